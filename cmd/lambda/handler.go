package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Abraxas-365/wsapix/logx"
	"github.com/Abraxas-365/wsapix/triggerx"
)

// Webhook handles one gateway delivery
type Webhook interface {
	Handle(ctx context.Context, req triggerx.Request) triggerx.Outcome
}

// Handler adapts API Gateway proxy requests to the webhook translator
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler builds the Lambda entry point
func NewHandler(webhook Webhook) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		body := []byte(req.Body)
		if req.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(req.Body)
			if err != nil {
				return respond(http.StatusBadRequest, map[string]any{"error": "Invalid base64 body"})
			}
			body = decoded
		}

		out := webhook.Handle(ctx, triggerx.Request{Headers: proxyHeaders(req), Body: body})
		if out.Err != nil {
			logx.With("status", out.Status).Warn("webhook rejected: %v", out.Err)
		}
		return respond(out.Status, out.Body)
	}
}

func proxyHeaders(req events.APIGatewayProxyRequest) http.Header {
	headers := make(http.Header)
	for name, values := range req.MultiValueHeaders {
		for _, v := range values {
			headers.Add(name, v)
		}
	}
	for name, v := range req.Headers {
		if headers.Get(name) == "" {
			headers.Set(name, v)
		}
	}
	return headers
}

func respond(status int, body any) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}
