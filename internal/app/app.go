package app

import (
	"context"
	"database/sql"
	"fmt"

	"rider/internal/entities"
	"rider/internal/gateway/notify/local"
	"rider/internal/gateway/push/webhook"
	"rider/internal/gateway/rest"
	"rider/internal/handlers/tasks/order_refresh"
	"rider/internal/pkg/config"
	"rider/internal/service/auth"
	"rider/internal/service/notification"
	"rider/internal/service/orders"
	"rider/internal/service/profile"
	"rider/internal/storage/session"
	"rider/pkg/background"
	"rider/pkg/logger"
)

// Application собирает граф сервисов процесса: хранилище сессии, клиент
// удалённого API, контроллер сессии, мост уведомлений и фоновый опрос.
type Application struct {
	Auth         *auth.Controller
	Orders       *orders.Service
	Profile      *profile.Service
	Bridge       *notification.Bridge
	Push         *webhook.Adapter
	RefreshTask  *order_refresh.Task
	Workers      *background.Worker
	SessionStore *session.Store
}

func Initialize(ctx context.Context, log logger.Logger, db *sql.DB, cfg *config.Config) (*Application, error) {
	store, err := session.New(db)
	if err != nil {
		return nil, fmt.Errorf("session storage: %w", err)
	}

	apiClient := rest.New(cfg.RemoteAPI.BaseURL, cfg.RemoteAPI.RequestTimeout)

	pushAdapter := webhook.New(log)
	notifier := local.New(log)
	bridge := notification.New(log, pushAdapter, notifier, store, apiClient)

	authController := auth.New(log, store, apiClient, bridge)
	ordersService := orders.New(log, apiClient)
	profileService := profile.New(log, apiClient, store)

	refreshTask := order_refresh.New(log, authController, ordersService, cfg.Tasks.OrdersPollInterval)

	// Входящее push-сообщение не заменяет данные опроса, а лишь ускоряет
	// следующий цикл обновления.
	bridge.SetOnNotificationCallback(func(entities.RemoteMessage) {
		nudgeCtx, cancel := context.WithTimeout(ctx, cfg.Tasks.OrdersPollInterval)
		defer cancel()
		refreshTask.Nudge(nudgeCtx)
	})

	// Порядок имеет значение: сессия восстанавливается до прогрева задач,
	// чтобы первый опрос уже видел авторизованного райдера.
	authController.RestoreSession(ctx)
	bridge.RequestPermission(ctx)
	bridge.Listen(ctx)

	workers, err := background.New(ctx, log, []background.Task{refreshTask})
	if err != nil {
		return nil, fmt.Errorf("background workers: %w", err)
	}

	return &Application{
		Auth:         authController,
		Orders:       ordersService,
		Profile:      profileService,
		Bridge:       bridge,
		Push:         pushAdapter,
		RefreshTask:  refreshTask,
		Workers:      workers,
		SessionStore: store,
	}, nil
}
