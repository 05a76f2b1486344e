package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	logger *slog.Logger
	game   gameDep
}

func newHandlers(logger *slog.Logger, game gameDep) *handlers {
	return &handlers{
		logger: logger,
		game:   game,
	}
}

func (that *handlers) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, that.game.Snapshot())
}

// selectCell - invalid moves are no-ops: the answer is always the current snapshot.
func (that *handlers) selectCell(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cell index must be an integer"})
		return
	}

	if err = that.game.SubmitMove(index); err != nil {
		that.logger.Debug("move ignored", "cell", index, "reason", err)
	}

	c.JSON(http.StatusOK, that.game.Snapshot())
}

func (that *handlers) reset(c *gin.Context) {
	that.game.Reset()

	c.JSON(http.StatusOK, that.game.Snapshot())
}

func (that *handlers) replay(c *gin.Context) {
	if err := that.game.StartReplay(); err != nil {
		that.logger.Debug("replay ignored", "reason", err)
	}

	c.JSON(http.StatusOK, that.game.Snapshot())
}

func (that *handlers) aiGame(c *gin.Context) {
	if err := that.game.StartAIGame(); err != nil {
		that.logger.Debug("game with AI ignored", "reason", err)
	}

	c.JSON(http.StatusOK, that.game.Snapshot())
}
