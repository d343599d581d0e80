// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rspace-os/rspace-client-go/api"
	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

// jobServer serves one job whose status advances through the given sequence,
// one step per poll.
func jobServer(statuses []string, finalBody string) *httptest.Server {
	polls := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, apc.ELNPath("jobs")) {
			http.NotFound(w, r)
			return
		}
		status := statuses[polls]
		if polls < len(statuses)-1 {
			polls++
		}
		if status == apc.JobCompleted && finalBody != "" {
			fmt.Fprint(w, finalBody)
			return
		}
		fmt.Fprintf(w, `{"id": 7, "status": %q}`, status)
	}))
}

func TestWaitForJobCompletes(t *testing.T) {
	srv := jobServer(
		[]string{apc.JobStarting, apc.JobStarted, apc.JobRunning, apc.JobCompleted},
		`{"id": 7, "status": "COMPLETED", "percentComplete": 100,
		  "_links": [{"rel": "enclosure", "link": "/export-1234.zip"}]}`)
	defer srv.Close()

	job, err := api.WaitForJob(testBaseParams(srv), 7, time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForJob failed: %v", err)
	}
	if job.Status != apc.JobCompleted {
		t.Errorf("status: got %q", job.Status)
	}
	href, ok := job.Link(apc.LinkEnclosure)
	if !ok || href != "/export-1234.zip" {
		t.Errorf("enclosure link: got %q, %v", href, ok)
	}
}

func TestWaitForJobFails(t *testing.T) {
	srv := jobServer([]string{apc.JobRunning, apc.JobFailed}, "")
	defer srv.Close()

	_, err := api.WaitForJob(testBaseParams(srv), 7, time.Millisecond)
	var jobErr *cmn.ErrJobFailed
	if !errors.As(err, &jobErr) {
		t.Fatalf("expected ErrJobFailed, got %v", err)
	}
	if jobErr.Status != apc.JobFailed {
		t.Errorf("status: got %q", jobErr.Status)
	}
}

func TestWaitForJobFailureDiagnostic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 7, "status": "FAILED",
			"result": {"message": "disk quota exceeded"}}`)
	}))
	defer srv.Close()

	_, err := api.WaitForJob(testBaseParams(srv), 7, time.Millisecond)
	var jobErr *cmn.ErrJobFailed
	if !errors.As(err, &jobErr) {
		t.Fatalf("expected ErrJobFailed, got %v", err)
	}
	if !strings.Contains(jobErr.Message, "disk quota exceeded") {
		t.Errorf("diagnostic: got %q", jobErr.Message)
	}
}

func TestWaitForJobUnknownStatus(t *testing.T) {
	srv := jobServer([]string{"PAUSED"}, "")
	defer srv.Close()

	_, err := api.WaitForJob(testBaseParams(srv), 7, time.Millisecond)
	var unknown *cmn.ErrUnknownJobStatus
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownJobStatus, got %v", err)
	}
}

func TestWaitForJobStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "no such job"}`)
	}))
	defer srv.Close()

	_, err := api.WaitForJob(testBaseParams(srv), 404, time.Millisecond)
	if !cmn.IsStatusNotFound(err) {
		t.Errorf("expected the HTTP error to be terminal, got %v", err)
	}
}

func TestDownloadExport(t *testing.T) {
	const payload = "zip archive bytes"
	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == apc.ELNPath("export", "xml", "user"):
			fmt.Fprint(w, `{"id": 55, "status": "STARTING"}`)
		case r.URL.Path == apc.ELNPath("jobs", "55"):
			polls++
			if polls < 2 {
				fmt.Fprint(w, `{"id": 55, "status": "RUNNING"}`)
				return
			}
			fmt.Fprint(w, `{"id": 55, "status": "COMPLETED",
				"_links": [{"rel": "enclosure", "link": "/archive.zip"}]}`)
		case r.URL.Path == "/archive.zip":
			fmt.Fprint(w, payload)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var buf bytes.Buffer
	args := &api.ExportArgs{Format: apc.ExportFormatXML, Scope: apc.ExportScopeUser}
	job, err := api.DownloadExport(testBaseParams(srv), args, time.Millisecond, &buf)
	if err != nil {
		t.Fatalf("DownloadExport failed: %v", err)
	}
	if job.ID != 55 {
		t.Errorf("job id: got %d", job.ID)
	}
	if buf.String() != payload {
		t.Errorf("artifact: got %q", buf.String())
	}
}

func TestExportArgsValidation(t *testing.T) {
	bp := api.BaseParams{} // must fail before any request
	for _, args := range []*api.ExportArgs{
		{},
		{Format: "pdf", Scope: apc.ExportScopeUser},
		{Format: apc.ExportFormatXML, Scope: "world"},
	} {
		if _, err := api.StartExport(bp, args); err == nil {
			t.Errorf("expected %+v to fail validation", args)
		}
	}
}
