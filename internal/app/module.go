package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/agrofono/checkout/internal/app/api/server"
	"github.com/agrofono/checkout/internal/app/service/reconcile"
	"github.com/agrofono/checkout/internal/app/service/statistics"
	"github.com/agrofono/checkout/internal/app/service/store"
	"github.com/agrofono/checkout/internal/app/service/webhooklog"
	"github.com/agrofono/checkout/internal/platform/db"
	"github.com/agrofono/checkout/internal/platform/mail"
	"github.com/agrofono/checkout/pkg/config"
	"github.com/agrofono/checkout/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	store.Module,
	reconcile.Module,
	statistics.Module,
	webhooklog.Module,
	mail.Module,
)
