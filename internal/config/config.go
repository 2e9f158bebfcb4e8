package config

import "fmt"

type Config struct {
	GCS           GCSConfig           `yaml:"gcs"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Serper        SerperConfig        `yaml:"serper"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type GCSConfig struct {
	Bucket           string `yaml:"bucket"`
	VideoPrefix      string `yaml:"video_prefix"`
	AudioPrefix      string `yaml:"audio_prefix"`
	TranscriptPrefix string `yaml:"transcript_prefix"`
}

type TranscriptionConfig struct {
	SampleRateHz   int    `yaml:"sample_rate_hz"`
	LanguageCode   string `yaml:"language_code"`
	Encoding       string `yaml:"encoding"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	Model       string   `yaml:"model"`
	APIKeys     []string `yaml:"api_keys"`
	Temperature float64  `yaml:"temperature"`
}

type SerperConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	TopN     int    `yaml:"top_n"`
}

type SMTPConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	Username        string   `yaml:"username"`
	Password        string   `yaml:"password"`
	Sender          string   `yaml:"sender"`
	FixedRecipients []string `yaml:"fixed_recipients"`
}

type PathsConfig struct {
	Inbox string `yaml:"inbox"`
	Temp  string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent     int `yaml:"max_concurrent"`
	RunTimeoutMinutes int `yaml:"run_timeout_minutes"`
}

func (c *Config) Validate() error {
	if c.GCS.Bucket == "" {
		return fmt.Errorf("gcs.bucket is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.SMTP.Host == "" {
		return fmt.Errorf("smtp.host is required")
	}
	if c.SMTP.Sender == "" {
		return fmt.Errorf("smtp.sender is required")
	}
	if len(c.SMTP.FixedRecipients) == 0 {
		return fmt.Errorf("smtp.fixed_recipients is required")
	}

	if c.GCS.VideoPrefix == "" {
		c.GCS.VideoPrefix = "video"
	}
	if c.GCS.AudioPrefix == "" {
		c.GCS.AudioPrefix = "audio"
	}
	if c.GCS.TranscriptPrefix == "" {
		c.GCS.TranscriptPrefix = "transcription"
	}
	if c.Transcription.SampleRateHz == 0 {
		c.Transcription.SampleRateHz = 16000
	}
	if c.Transcription.LanguageCode == "" {
		c.Transcription.LanguageCode = "en-US"
	}
	if c.Transcription.Encoding == "" {
		c.Transcription.Encoding = "LINEAR16"
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "video"
	}
	if c.Transcription.TimeoutSeconds == 0 {
		c.Transcription.TimeoutSeconds = 600
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.1
	}
	if c.Serper.Endpoint == "" {
		c.Serper.Endpoint = "https://google.serper.dev/search"
	}
	if c.Serper.TopN == 0 {
		c.Serper.TopN = 3
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.RunTimeoutMinutes == 0 {
		c.Performance.RunTimeoutMinutes = 30
	}

	return nil
}
