package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/config"
	"github.com/azamatbyte/ramadan/internal/geocode"
	"github.com/azamatbyte/ramadan/internal/prayer"
	"github.com/azamatbyte/ramadan/internal/render"
	"github.com/azamatbyte/ramadan/internal/scheduler"
	"github.com/azamatbyte/ramadan/internal/store"
	"github.com/azamatbyte/ramadan/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	loc     *time.Location

	repo      *store.FileRepo
	router    *telegram.Router
	scheduler *scheduler.Scheduler
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv, loc: loc}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting ramadan-bot",
		zap.String("tz", a.cfg.Timezone),
		zap.String("http", a.cfg.HTTPAddr),
	)

	repo, err := store.Open(a.cfg.DataDir)
	if err != nil {
		a.log.Error("open store failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("store ready", zap.String("dir", a.cfg.DataDir))

	renderer, err := render.New(a.cfg.AssetsDir)
	if err != nil {
		a.log.Error("init renderer failed", zap.Error(err))
		return err
	}

	prayers := prayer.New(a.cfg.PrayerAPI, a.cfg.Timezone)
	geocoder := geocode.New(a.cfg.GeocodeAPI)

	a.router = telegram.NewRouter(a.bot, a.log, a.repo, renderer, prayers, geocoder, a.loc)

	engine := scheduler.NewEngine(a.repo, prayers, a.log)
	dispatcher := scheduler.NewDispatcher(a.repo, a.router, renderer, a.log)
	a.scheduler = scheduler.New(engine, dispatcher, a.loc, a.log)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Run(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
