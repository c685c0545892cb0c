// SPDX-License-Identifier: Apache-2.0

// Package crunchdao is a Go client for the CrunchDAO machine-learning
// tournament API. It downloads competition datasets, uploads prediction
// files, and queries submission metadata and scores.
//
// A [Client] is constructed once and shared; its credential and endpoints
// are immutable afterwards. The API key is taken from the CRUNCHDAO_API_KEY
// environment variable unless [WithAPIKey] is used:
//
//	client, err := crunchdao.New()
//	if err != nil {
//		// ...
//	}
//
//	predictions := models.NewTable(
//		models.Column{Name: "id", Type: models.ColumnString},
//		models.Column{Name: "pred", Type: models.ColumnFloat},
//	)
//	_ = predictions.Append("Moon_1", "0.42")
//
//	id, err := client.Upload(ctx, predictions)
//
// Every failure is surfaced immediately as one of the package's sentinel
// errors ([ErrAuthentication], [ErrValidation], [ErrUpload], [ErrDownload],
// [ErrNotFound]); nothing is retried internally.
package crunchdao
