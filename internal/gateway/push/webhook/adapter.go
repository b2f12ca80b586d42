package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"rider/internal/entities"
	"rider/pkg/logger"
)

// Adapter принимает push-сообщения по HTTP от шлюза доставки уведомлений.
// Токен устройства выдаётся при создании и живёт до явной ротации через
// вебхук; сообщение, пришедшее до регистрации подписчиков, откладывается
// и отдаётся через InitialNotification.
type Adapter struct {
	log adapterLogger

	mu         sync.Mutex
	token      string
	nextSubID  int
	messageSub map[int]func(entities.RemoteMessage)
	openedSub  map[int]func(entities.RemoteMessage)
	tokenSub   map[int]func(string)
	pending    *entities.RemoteMessage
}

func New(log adapterLogger) *Adapter {
	return &Adapter{
		log:        log,
		token:      uuid.NewString(),
		messageSub: make(map[int]func(entities.RemoteMessage)),
		openedSub:  make(map[int]func(entities.RemoteMessage)),
		tokenSub:   make(map[int]func(string)),
	}
}

// Router возвращает маршруты вебхука для отдельного push-листенера.
func (a *Adapter) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/push/message", a.handleMessage).Methods(http.MethodPost)
	router.HandleFunc("/push/opened", a.handleOpened).Methods(http.MethodPost)
	router.HandleFunc("/push/token", a.handleTokenRotation).Methods(http.MethodPost)
	return router
}

// RequestPermission всегда отвечает согласием: вебхук-транспорт не требует
// разрешения времени выполнения.
func (a *Adapter) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (a *Adapter) Token(context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token, nil
}

func (a *Adapter) OnMessage(fn func(msg entities.RemoteMessage)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSubID
	a.nextSubID++
	a.messageSub[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.messageSub, id)
	}
}

func (a *Adapter) OnNotificationOpened(fn func(msg entities.RemoteMessage)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSubID
	a.nextSubID++
	a.openedSub[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.openedSub, id)
	}
}

func (a *Adapter) OnTokenRefresh(fn func(token string)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSubID
	a.nextSubID++
	a.tokenSub[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.tokenSub, id)
	}
}

// InitialNotification отдаёт отложенное сообщение один раз.
func (a *Adapter) InitialNotification(context.Context) (*entities.RemoteMessage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	pending := a.pending
	a.pending = nil
	return pending, nil
}

func (a *Adapter) handleMessage(w http.ResponseWriter, r *http.Request) {
	var dto messageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	msg := toDomainMessage(dto)

	a.mu.Lock()
	subs := make([]func(entities.RemoteMessage), 0, len(a.messageSub))
	for _, fn := range a.messageSub {
		subs = append(subs, fn)
	}
	if len(subs) == 0 {
		a.pending = &msg
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(msg)
	}

	a.log.Debug("push message received",
		logger.NewField("subscribers", len(subs)),
	)
	w.WriteHeader(http.StatusAccepted)
}

func (a *Adapter) handleOpened(w http.ResponseWriter, r *http.Request) {
	var dto messageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	msg := toDomainMessage(dto)

	a.mu.Lock()
	subs := make([]func(entities.RemoteMessage), 0, len(a.openedSub))
	for _, fn := range a.openedSub {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(msg)
	}

	w.WriteHeader(http.StatusAccepted)
}

func (a *Adapter) handleTokenRotation(w http.ResponseWriter, r *http.Request) {
	var dto tokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token := dto.Token
	if token == "" {
		token = uuid.NewString()
	}

	a.mu.Lock()
	a.token = token
	subs := make([]func(string), 0, len(a.tokenSub))
	for _, fn := range a.tokenSub {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(token)
	}

	a.log.Info("push token rotated")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tokenDTO{Token: token}); err != nil {
		a.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
