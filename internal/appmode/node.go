package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

func RunNode(ctx context.Context, stop context.CancelFunc, ni *model.NodeInit) {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(ni.Address, processor.Processor{})

	// запуск сервера
	go func() {
		log.Printf("Search-node running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown search-node %q correctly: %q", ni.Address, err.Error())
	} else {
		log.Printf("Search-node %q server is closed.", ni.Address)
	}
}
