package status

import (
	"encoding/json"
	"net/http"

	"github.com/carson-networks/bank-client/internal/logging"
	"github.com/carson-networks/bank-client/internal/storage"
)

// Report is the body of GET /status.
type Report struct {
	Status       string `json:"status"`
	Users        int    `json:"users"`
	Accounts     int    `json:"accounts"`
	Transactions int    `json:"transactions"`
}

type Handler struct {
	Storage *storage.Storage
}

func NewHandler(s *storage.Storage) Handler {
	return Handler{Storage: s}
}

func (h Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := req.Context()
	reader := h.Storage.Read(ctx)
	report := Report{
		Status:       "ok",
		Users:        reader.Users.Count(ctx),
		Accounts:     reader.Accounts.Count(ctx),
		Transactions: reader.Transactions.Count(ctx),
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("users", report.Users)
		logData.AddData("accounts", report.Accounts)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(report)
}
