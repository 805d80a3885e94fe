package donations

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/DuelArena_Go/internal/logger"
	"github.com/osse101/DuelArena_Go/internal/scheduler"
	"github.com/osse101/DuelArena_Go/internal/worker"
)

// Scheduler registers delayed reconnect attempts
type Scheduler interface {
	ScheduleOnce(delay time.Duration, job worker.Job) scheduler.Handle
}

// feedMessage is the wire format of the donation feed
type feedMessage struct {
	Type      string  `json:"type"`
	Username  string  `json:"username"`
	AmountUSD float64 `json:"amount_usd"`
	// Historical marks replays of already-processed donations sent on
	// reconnect; they must never be credited again.
	Historical bool `json:"historical"`
}

// authMessage authenticates the socket after connecting
type authMessage struct {
	Token string `json:"token"`
}

// Listener maintains the donation feed socket. Connection failures do not
// retry in a tight loop: each failed or dropped connection schedules one
// reconnect attempt on the shared scheduler.
type Listener struct {
	url   string
	token string
	svc   Service
	sched Scheduler

	reconnectDelay time.Duration

	mu       sync.Mutex
	conn     *websocket.Conn
	stopped  bool
	shutdown chan struct{}
}

// NewListener creates a donation feed listener
func NewListener(url, token string, svc Service, sched Scheduler, reconnectDelay time.Duration) *Listener {
	if reconnectDelay <= 0 {
		reconnectDelay = DefaultReconnectDelay
	}
	return &Listener{
		url:            url,
		token:          token,
		svc:            svc,
		sched:          sched,
		reconnectDelay: reconnectDelay,
		shutdown:       make(chan struct{}),
	}
}

// Start connects to the feed and begins reading. On failure the next
// attempt is scheduled rather than retried inline.
func (l *Listener) Start(ctx context.Context) {
	go l.run(ctx)
}

// Stop closes the feed connection and prevents further reconnects
func (l *Listener) Stop() {
	l.mu.Lock()
	l.stopped = true
	conn := l.conn
	l.mu.Unlock()

	close(l.shutdown)
	if conn != nil {
		conn.Close()
	}
}

func (l *Listener) run(ctx context.Context) {
	log := logger.FromContext(ctx)

	if err := l.connect(ctx); err != nil {
		log.Warn(LogMsgDisconnected, "error", err, "retry_in", l.reconnectDelay)
		l.scheduleReconnect()
		return
	}

	err := l.readLoop(ctx)
	if l.isStopped() {
		log.Info(LogMsgListenerStopped)
		return
	}
	log.Warn(LogMsgDisconnected, "error", err, "retry_in", l.reconnectDelay)
	l.scheduleReconnect()
}

func (l *Listener) connect(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConnecting, "url", l.url)

	dialer := websocket.Dialer{
		ReadBufferSize:  ReadBufferSize,
		WriteBufferSize: WriteBufferSize,
	}
	conn, _, err := dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgConnectFailed, err)
	}

	if l.token != "" {
		if err := conn.WriteJSON(authMessage{Token: l.token}); err != nil {
			conn.Close()
			return fmt.Errorf(ErrMsgAuthFailed, err)
		}
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	log.Info(LogMsgConnected, "url", l.url)
	return nil
}

func (l *Listener) readLoop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()

	for {
		select {
		case <-l.shutdown:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var msg feedMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Debug(LogMsgUnparsableMessage, "error", err)
			continue
		}
		if msg.Type != MessageTypeDonation {
			continue
		}
		if msg.Historical {
			log.Debug(LogMsgHistoricalSkipped, "username", msg.Username)
			continue
		}

		if err := l.svc.HandleDonation(ctx, msg.Username, msg.AmountUSD); err != nil {
			log.Warn("Failed to handle donation", "error", err, "username", msg.Username)
		}
	}
}

// scheduleReconnect queues the next connection attempt
func (l *Listener) scheduleReconnect() {
	if l.isStopped() {
		return
	}
	l.sched.ScheduleOnce(l.reconnectDelay, worker.JobFunc(func(jobCtx context.Context) error {
		l.run(jobCtx)
		return nil
	}))
}

func (l *Listener) isStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}
