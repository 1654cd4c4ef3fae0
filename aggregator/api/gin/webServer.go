package gin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/feusd-io/hip3-oracles-go/aggregator"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	shutdownTimeout = time.Second * 5
	streamInterval  = time.Second * 2
)

var log = logger.GetOrCreate("hip3-oracles-go/aggregator/api/gin")

var errNilCycleProvider = errors.New("nil cycle provider")

// CycleProvider defines the component able to expose the latest completed cycle
type CycleProvider interface {
	LastCycle() *aggregator.CycleResult
	IsInterfaceNil() bool
}

// webServer exposes the feeder status and the latest cycle results over REST
// and a websocket stream
type webServer struct {
	apiInterface  string
	cycleProvider CycleProvider
	httpServer    *http.Server
	upgrader      websocket.Upgrader
}

// NewWebServerHandler returns a new instance of webServer
func NewWebServerHandler(apiInterface string, cycleProvider CycleProvider) (*webServer, error) {
	if cycleProvider == nil || cycleProvider.IsInterfaceNil() {
		return nil, errNilCycleProvider
	}

	return &webServer{
		apiInterface:  apiInterface,
		cycleProvider: cycleProvider,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}, nil
}

// StartHttpServer will create a new instance of http.Server and populate it with all the routes
func (ws *webServer) StartHttpServer() error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	engine.Use(cors.Default())

	engine.GET("/status", ws.statusHandler)
	engine.GET("/prices", ws.pricesHandler)
	engine.GET("/ws", ws.streamHandler)

	ws.httpServer = &http.Server{
		Addr:    ws.apiInterface,
		Handler: engine,
	}

	go func() {
		err := ws.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("web server error", "error", err.Error())
		}
	}()

	return nil
}

func (ws *webServer) statusHandler(c *gin.Context) {
	cycle := ws.cycleProvider.LastCycle()
	if cycle == nil {
		c.JSON(http.StatusOK, gin.H{"status": "starting", "lastCycle": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "running",
		"lastCycle": cycle.ID,
		"timestamp": cycle.Timestamp,
	})
}

func (ws *webServer) pricesHandler(c *gin.Context) {
	cycle := ws.cycleProvider.LastCycle()
	if cycle == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no completed cycle yet"})
		return
	}

	c.JSON(http.StatusOK, cycle)
}

// streamHandler upgrades the connection and pushes the latest cycle result set
// periodically until the client disconnects
func (ws *webServer) streamHandler(c *gin.Context) {
	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug("websocket upgrade failed", "error", err.Error())
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	var lastSentID string
	for range ticker.C {
		cycle := ws.cycleProvider.LastCycle()
		if cycle == nil || cycle.ID == lastSentID {
			continue
		}

		err = conn.WriteJSON(cycle)
		if err != nil {
			return
		}
		lastSentID = cycle.ID
	}
}

// Close will handle the closing of the inner components
func (ws *webServer) Close() error {
	if ws.httpServer == nil {
		return nil
	}

	shutdownContext, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return ws.httpServer.Shutdown(shutdownContext)
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
