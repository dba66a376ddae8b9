package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Samu0104/loucura-total/constant"
	utilsContext "github.com/Samu0104/loucura-total/utils/context"
	"github.com/Samu0104/loucura-total/utils/errors"
	"github.com/Samu0104/loucura-total/utils/logger"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var cerr errors.CustomError
	if !stderrors.As(err, &cerr) {
		cerr = errors.SetCustomError(constant.ErrInternal)
	}

	if requestID, ok := utilsContext.GetRequestID(r.Context()); ok {
		logger.Info("[writeError] request failed",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.String("code", cerr.ErrorCode()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(cerr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(response{
		Code:    cerr.ErrorCode(),
		Message: cerr.Error(),
	})
}
