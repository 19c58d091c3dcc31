package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Abraxas-365/wsapix/appx"
	"github.com/Abraxas-365/wsapix/logx"
)

func main() {
	settings, err := appx.Load(appx.LoadOptions{})
	if err != nil {
		logx.Fatal("load settings: %v", err)
	}
	app, err := appx.New(context.Background(), settings)
	if err != nil {
		logx.Fatal("wire application: %v", err)
	}
	defer app.Close()

	lambda.Start(NewHandler(app.Translator))
}
