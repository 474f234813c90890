package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/model"
	"github.com/GrigoriyPoshnagovInstitute/MerchandiseService/pkg/domain/service"
)

type addProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type productAddedResponse struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"displayOrder"`
	State        string `json:"state"`
}

type suspendRequest struct {
	Reason string `json:"reason"`
}

type stateResponse struct {
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type handlers struct {
	service service.MerchandiseService
	logger  log.FieldLogger
}

func Router(merchandiseService service.MerchandiseService, logger log.FieldLogger) http.Handler {
	h := &handlers{service: merchandiseService, logger: logger}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", h.addProduct).Methods(http.MethodPost)
	s.HandleFunc("/merchandise/suspend", h.suspend).Methods(http.MethodPost)
	s.HandleFunc("/merchandise/resume", h.resume).Methods(http.MethodPost)
	return logMiddleware(logger, r)
}

func (h *handlers) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Kind: "InvalidRequest", Message: err.Error()})
		return
	}

	added, err := h.service.AddProduct(r.Context(), service.AddProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	product := added.Event.Product
	h.writeJSON(w, http.StatusCreated, productAddedResponse{
		ProductID:    product.ID.String(),
		Name:         product.Name.String(),
		Description:  product.Description.String(),
		Category:     product.Category.String(),
		DisplayOrder: added.Event.DisplayOrder.Int(),
		State:        model.StateName(added.Merchandise),
	})
}

func (h *handlers) suspend(w http.ResponseWriter, r *http.Request) {
	var req suspendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Kind: "InvalidRequest", Message: err.Error()})
		return
	}

	suspension, err := h.service.SuspendMerchandise(r.Context(), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateResponse{
		State:  model.StateName(suspension.Merchandise),
		Reason: suspension.Event.Reason,
	})
}

func (h *handlers) resume(w http.ResponseWriter, r *http.Request) {
	resumption, err := h.service.ResumeMerchandise(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stateResponse{State: model.StateName(resumption.Merchandise)})
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	var (
		invalidRequest service.InvalidRequestError
		duplicateName  model.DuplicateProductNameError
		notAllowed     model.OperationNotAllowedError
	)
	switch {
	case errors.As(err, &invalidRequest):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Kind: "InvalidRequest", Message: invalidRequest.Message})
	case errors.As(err, &duplicateName):
		h.writeJSON(w, http.StatusConflict, errorResponse{Kind: "DuplicateProductName", Message: duplicateName.Error()})
	case errors.As(err, &notAllowed):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Kind: "OperationNotAllowed", Message: notAllowed.Error()})
	case errors.Is(err, model.ErrOptimisticLock):
		h.writeJSON(w, http.StatusConflict, errorResponse{Kind: "ConcurrentModification", Message: err.Error()})
	default:
		h.logger.WithError(err).Error("merchandise request failed")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Kind: "Internal", Message: "internal error"})
	}
}

func (h *handlers) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithField("err", err).Error("write response")
	}
}

func logMiddleware(logger log.FieldLogger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
