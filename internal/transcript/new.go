package transcript

import (
	"github.com/meetingmind/meetingmind/internal/audio"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/storage"
	"github.com/meetingmind/meetingmind/internal/transcriber"
)

type implManager struct {
	cfg         *config.Config
	store       storage.Store
	extractor   audio.Extractor
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a transcript cache Manager
func New(cfg *config.Config, store storage.Store, ext audio.Extractor, tr transcriber.Transcriber, log logger.Logger) Manager {
	return &implManager{
		cfg:         cfg,
		store:       store,
		extractor:   ext,
		transcriber: tr,
		logger:      log,
	}
}
