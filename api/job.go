// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

// DfltPollInterval is the default wait between job status probes.
const DfltPollInterval = 30 * time.Second

type (
	// JobLink is one entry of a job's `_links` array.
	JobLink struct {
		Link string `json:"link"`
		Rel  string `json:"rel"`
	}

	// JobInfo is a job status snapshot. Status is one of the apc.Job*
	// constants; on completion the enclosure link points at the result
	// artifact.
	JobInfo struct {
		ID              int64               `json:"id"`
		Status          string              `json:"status"`
		PercentComplete float64             `json:"percentComplete,omitempty"`
		Result          jsoniter.RawMessage `json:"result,omitempty"`
		Links           []JobLink           `json:"_links,omitempty"`
	}

	// ExportArgs describe an asynchronous export of a user's or group's
	// records. UID selects a specific user or group; zero means the caller.
	ExportArgs struct {
		Format string // apc.ExportFormatXML | apc.ExportFormatHTML
		Scope  string // apc.ExportScopeUser | apc.ExportScopeGroup
		UID    int64
	}
)

// Link returns the href of the link with the given relation.
func (j *JobInfo) Link(rel string) (string, bool) {
	for _, l := range j.Links {
		if l.Rel == rel {
			return l.Link, true
		}
	}
	return "", false
}

func (args *ExportArgs) validate() error {
	return validation.Errors{
		"format": validation.Validate(args.Format,
			validation.Required, validation.In(apc.ExportFormatXML, apc.ExportFormatHTML)),
		"scope": validation.Validate(args.Scope,
			validation.Required, validation.In(apc.ExportScopeUser, apc.ExportScopeGroup)),
	}.Filter()
}

// StartExport starts an asynchronous export job and returns its initial
// status (most importantly, the job id).
func StartExport(bp BaseParams, args *ExportArgs) (*JobInfo, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	words := []string{"export", args.Format, args.Scope}
	if args.UID != 0 {
		words = append(words, itoa(args.UID))
	}
	job := &JobInfo{}
	err := doJSON(bp, http.MethodPost, apc.ELNPath(words...), nil, job)
	return job, err
}

// GetJobStatus returns a single job status snapshot.
func GetJobStatus(bp BaseParams, jobID int64) (*JobInfo, error) {
	job := &JobInfo{}
	err := doJSON(bp, http.MethodGet, apc.ELNPath("jobs", itoa(jobID)), nil, job)
	return job, err
}

// errJobRunning paces the poll loop: a non-terminal status is "retried".
type errJobRunning struct{ status string }

func (e *errJobRunning) Error() string { return "job still " + e.status }

// WaitForJob polls a job at a fixed interval until it reaches a terminal
// status. COMPLETED returns the final snapshot; FAILED and ABANDONED return
// the server's diagnostic as an error; an unrecognized status is itself a
// terminal error. Blocks the calling goroutine for the full duration of the
// job - there is no cancellation once started.
func WaitForJob(bp BaseParams, jobID int64, interval time.Duration) (*JobInfo, error) {
	if interval <= 0 {
		interval = DfltPollInterval
	}
	var job *JobInfo
	poll := func() error {
		var err error
		job, err = GetJobStatus(bp, jobID)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch job.Status {
		case apc.JobCompleted:
			return nil
		case apc.JobStarting, apc.JobStarted, apc.JobRunning:
			return &errJobRunning{status: job.Status}
		case apc.JobFailed, apc.JobAbandoned:
			return backoff.Permanent(cmn.NewErrJobFailed(job.Status, jobDiagnostic(job.Result)))
		default:
			return backoff.Permanent(cmn.NewErrUnknownJobStatus(job.Status))
		}
	}
	if err := backoff.Retry(poll, backoff.NewConstantBackOff(interval)); err != nil {
		return nil, err
	}
	return job, nil
}

// DownloadExport starts an export, waits for it to complete, and writes the
// result artifact to w. Returns the completed job snapshot.
func DownloadExport(bp BaseParams, args *ExportArgs, interval time.Duration, w io.Writer) (*JobInfo, error) {
	started, err := StartExport(bp, args)
	if err != nil {
		return nil, err
	}
	job, err := WaitForJob(bp, started.ID, interval)
	if err != nil {
		return nil, err
	}
	href, ok := job.Link(apc.LinkEnclosure)
	if !ok {
		return nil, cmn.NewErrJobFailed(job.Status, "completed job carries no enclosure link")
	}
	if err := downloadLink(bp, href, w); err != nil {
		return nil, err
	}
	return job, nil
}

// downloadLink streams the content behind a server-supplied link, which may
// be absolute or relative to the client's base URL.
func downloadLink(bp BaseParams, href string, w io.Writer) error {
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = strings.TrimPrefix(href, bp.URL)
	}
	r, err := reqParams.doReader()
	FreeRp(reqParams)
	if err != nil {
		return err
	}
	defer r.Close()
	_, err = io.Copy(w, r)
	return err
}

// jobDiagnostic formats the server-supplied failure detail of a job result.
func jobDiagnostic(result jsoniter.RawMessage) string {
	if len(result) == 0 {
		return "no diagnostic supplied"
	}
	var em rspaceErrMsg
	if err := jsoniter.Unmarshal(result, &em); err == nil && em.text() != "" {
		return em.text()
	}
	return string(result)
}
