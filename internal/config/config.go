package config

import "fmt"

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	// APIKey may be left empty; GEMINI_API_KEY / GOOGLE_API_KEY are used as fallback.
	APIKey string `yaml:"api_key"`
	// Models are tried in order at startup; the first that initializes is
	// used for every call afterwards.
	Models              []string `yaml:"models"`
	Temperature         float32  `yaml:"temperature"`
	MergeTemperature    float32  `yaml:"merge_temperature"`
	MaxOutputTokens     int32    `yaml:"max_output_tokens"`
	PollIntervalSeconds int      `yaml:"poll_interval_seconds"`
	PollTimeoutSeconds  int      `yaml:"poll_timeout_seconds"`
}

type SegmenterConfig struct {
	FFmpegPath        string `yaml:"ffmpeg_path"`
	FFprobePath       string `yaml:"ffprobe_path"`
	MaxSegmentMinutes int    `yaml:"max_segment_minutes"`
	AudioBitrate      string `yaml:"audio_bitrate"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if len(c.Gemini.Models) == 0 {
		c.Gemini.Models = []string{
			"gemini-2.5-flash",
			"gemini-2.5-pro",
			"gemini-2.5-flash-lite",
			"gemini-flash-latest",
		}
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.3
	}
	if c.Gemini.MergeTemperature == 0 {
		c.Gemini.MergeTemperature = 0.1
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 32000
	}
	if c.Gemini.PollIntervalSeconds == 0 {
		c.Gemini.PollIntervalSeconds = 3
	}
	if c.Gemini.PollTimeoutSeconds == 0 {
		c.Gemini.PollTimeoutSeconds = 300
	}

	if c.Segmenter.FFmpegPath == "" {
		c.Segmenter.FFmpegPath = "ffmpeg"
	}
	if c.Segmenter.FFprobePath == "" {
		c.Segmenter.FFprobePath = "ffprobe"
	}
	if c.Segmenter.MaxSegmentMinutes == 0 {
		c.Segmenter.MaxSegmentMinutes = 40
	}
	if c.Segmenter.AudioBitrate == "" {
		c.Segmenter.AudioBitrate = "64k"
	}

	return nil
}
