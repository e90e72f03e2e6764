package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// CronJobServices agrupa os serviços agendados expostos para disparo manual
type CronJobServices struct {
	GoalProgressSyncService *scheduler.GoalProgressSyncService
}

// RunCronJob dispara manualmente um job agendado. O job roda em segundo
// plano e a resposta indica apenas que o disparo foi aceito.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		jobType := params.ByName("type")

		switch jobType {
		case "goal-progress":
			go func() {
				if err := services.GoalProgressSyncService.SyncGoalProgress(); err != nil {
					logrus.WithError(err).Error("Erro na apuração de avanço de metas disparada manualmente")
				}
			}()
		default:
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job desconhecido", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status": "started",
			"job":    jobType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	type jobStatus struct {
		Running         bool   `json:"running"`
		LastStartedAt   string `json:"last_started_at,omitempty"`
		LastCompletedAt string `json:"last_completed_at,omitempty"`
	}

	formatTime := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, completedAt := services.GoalProgressSyncService.Status()

		writeJSON(w, http.StatusOK, map[string]jobStatus{
			"goal-progress": {
				Running:         running,
				LastStartedAt:   formatTime(startedAt),
				LastCompletedAt: formatTime(completedAt),
			},
		})
	}
}
