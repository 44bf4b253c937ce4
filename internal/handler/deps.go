package handler

import (
	"zazachat/internal/app/chat"
	"zazachat/internal/app/translate"
	"zazachat/internal/configs"
)

type AppDeps struct {
	Chat       *chat.Service
	Translator *translate.Service
	Config     *configs.AppConfig
}
