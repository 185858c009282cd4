package handler

import (
	"context"
	"fmt"
	"net/http"

	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestID returns the Lambda request id, or a fresh uuid outside Lambda.
func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

// recoverInto turns a panic in the unit into a 500 response.
func recoverInto(response *model.InvocationResponse, unit, id string) {
	if r := recover(); r != nil {
		message := msg.GetMessage("handler.panic", fmt.Sprint(r))
		log.Error(message, zap.String("unit", unit), zap.String("request_id", id))
		*response = model.NewErrorResponse(http.StatusInternalServerError, fmt.Sprint(r))
	}
}
