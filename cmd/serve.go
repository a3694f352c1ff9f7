package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/remarks-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the remark intake webhook server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx, false)
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"}) //nolint:errcheck
		})

		r.Post("/api/remarks", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				ShopName    string `json:"shop_name"`
				Status      string `json:"status"`
				Remarks     string `json:"remarks"`
				SubmittedBy string `json:"submitted_by"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if body.ShopName == "" {
				http.Error(w, `{"error":"shop_name is required"}`, http.StatusBadRequest)
				return
			}

			sub := model.Submission{
				ID:          uuid.New().String(),
				ShopName:    body.ShopName,
				Status:      body.Status,
				Remarks:     body.Remarks,
				SubmittedBy: body.SubmittedBy,
				SubmittedAt: time.Now().UTC().Format(time.RFC3339),
			}
			if sub.SubmittedBy == "" {
				sub.SubmittedBy = "DApp"
			}

			if err := env.submissions.Append(req.Context(), sub); err != nil {
				zap.L().Error("intake append failed",
					zap.String("shop", sub.ShopName),
					zap.Error(err),
				)
				http.Error(w, `{"error":"could not record submission"}`, http.StatusBadGateway)
				return
			}

			zap.L().Info("submission recorded",
				zap.String("submission_id", sub.ID),
				zap.String("shop", sub.ShopName),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
				"status":        "accepted",
				"submission_id": sub.ID,
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("intake server listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (0 = config default)")
	rootCmd.AddCommand(serveCmd)
}
