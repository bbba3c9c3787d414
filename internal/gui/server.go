// A small gin HTTP server exposing the latest optimization run's
// exported graphs. Mirrors the teacher's request/response bridge
// pattern (the gui asks, the optimizer answers over a channel) but
// swaps the edge/cloud cluster-state snapshot for Pulse's assignment
// and composition result graphs.
package gui

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Snapshot is the latest exported result the optimizer has available.
// Any field left empty just means that stage hasn't produced a result
// yet.
type Snapshot struct {
	AssignmentGraphML  string `json:"assignmentGraphml"`
	AssignmentCSV      string `json:"assignmentCsv"`
	CompositionGraphML string `json:"compositionGraphml"`
	CompositionCSV     string `json:"compositionCsv"`
}

// Bridge is how the optimizer answers the gui's snapshot requests,
// without either side importing the other.
type Bridge struct {
	SnapshotRequestStream chan<- struct{}
	SnapshotStream        <-chan Snapshot
}

var snapshotRequestStream chan<- struct{}
var snapshotStream <-chan Snapshot
var router *gin.Engine

func registerRoutes() {
	router.GET("/snapshot", func(ctx *gin.Context) {
		snapshotRequestStream <- struct{}{}
		ctx.JSON(http.StatusOK, <-snapshotStream)
	})
}

// SetUp wires the gin router to the given bridge. Call Run afterwards.
func SetUp(bridge Bridge) {
	snapshotStream = bridge.SnapshotStream
	snapshotRequestStream = bridge.SnapshotRequestStream

	router = gin.Default()
	router.Use(cors.Default())

	registerRoutes()
}

// Run blocks serving on :8080.
func Run() {
	router.Run(":8080")
}
