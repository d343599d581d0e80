// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

type (
	// BaseParams is the immutable per-call client configuration. Every
	// operation constructs its own request from BaseParams plus its own
	// arguments; there is no process-wide mutable state.
	BaseParams struct {
		Client *http.Client
		URL    string // server base URL, e.g. "https://community.researchspace.com"
		APIKey string
		Method string
		Logger hclog.Logger
	}

	// ReqParams is used in constructing client-side API requests.
	// Stores Query and Header for arguments that are not used commonly.
	ReqParams struct {
		BaseParams BaseParams
		Path       string
		Body       []byte
		Query      url.Values
		Header     http.Header
	}
)

// NewBaseParams builds request parameters from a validated configuration.
func NewBaseParams(conf *cmn.ClientConf) BaseParams {
	return BaseParams{
		Client: &http.Client{Timeout: conf.Timeout},
		URL:    strings.TrimSuffix(conf.BaseURL, "/"),
		APIKey: conf.APIKey,
		Logger: hclog.NewNullLogger(),
	}
}

// HTTPStatus returns the HTTP status or (-1) for non-HTTP (transport) errors.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if httpErr := cmn.Err2HTTPErr(err); httpErr != nil {
		return httpErr.Status
	}
	return -1
}

func SetAPIKey(r *http.Request, key string) {
	if key != "" {
		r.Header.Set(apc.HdrAPIKey, key)
	}
}

///////////////
// ReqParams //
///////////////

var (
	reqParamPool sync.Pool
	reqParams0   ReqParams
)

func AllocRp() *ReqParams {
	if v := reqParamPool.Get(); v != nil {
		return v.(*ReqParams)
	}
	return &ReqParams{}
}

func FreeRp(reqParams *ReqParams) {
	*reqParams = reqParams0
	reqParamPool.Put(reqParams)
}

// uses do() to make the request; if successful, checks, drains, and closes
// the response body
func (reqParams *ReqParams) DoRequest() error {
	resp, err := reqParams.do()
	if err != nil {
		return err
	}
	err = reqParams.checkResp(resp)
	cmn.DrainReader(resp.Body)
	resp.Body.Close()
	return err
}

// DoReqAny makes the request and decodes the JSON response into `v`.
func (reqParams *ReqParams) DoReqAny(v any) error {
	resp, err := reqParams.do()
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := reqParams.checkResp(resp); err != nil {
		cmn.DrainReader(resp.Body)
		return err
	}
	if v == nil {
		cmn.DrainReader(resp.Body)
		return nil
	}
	switch t := v.(type) {
	case *string:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response, err: %w", err)
		}
		*t = string(b)
	case io.Writer:
		if _, err := io.Copy(t, resp.Body); err != nil {
			return fmt.Errorf("failed to read response, err: %w", err)
		}
	default:
		if err := jsoniter.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("failed to decode response, err: %w", err)
		}
		cmn.DrainReader(resp.Body)
	}
	return nil
}

// same as above except that it returns the response body for subsequent
// reading; the caller closes it
func (reqParams *ReqParams) doReader() (io.ReadCloser, error) {
	resp, err := reqParams.do()
	if err != nil {
		return nil, err
	}
	if err := reqParams.checkResp(resp); err != nil {
		cmn.DrainReader(resp.Body)
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (reqParams *ReqParams) do() (*http.Response, error) {
	var reqBody io.Reader
	if reqParams.Body != nil {
		reqBody = bytes.NewBuffer(reqParams.Body)
	}
	urlPath := reqParams.BaseParams.URL + reqParams.Path
	req, err := http.NewRequest(reqParams.BaseParams.Method, urlPath, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	reqParams.setRequestOptParams(req)
	SetAPIKey(req, reqParams.BaseParams.APIKey)

	if l := reqParams.BaseParams.Logger; l != nil && l.IsDebug() {
		l.Debug("api request", "method", req.Method, "path", reqParams.Path, "query", req.URL.RawQuery)
	}
	resp, err := reqParams.BaseParams.Client.Do(req) //nolint:bodyclose // closed by the caller
	if err != nil {
		// transport failure - distinct from an API error
		return nil, err
	}
	return resp, nil
}

// setRequestOptParams sets the optional fields of the request, if provided.
func (reqParams *ReqParams) setRequestOptParams(req *http.Request) {
	if len(reqParams.Query) != 0 {
		req.URL.RawQuery = reqParams.Query.Encode()
	}
	if reqParams.Header != nil {
		req.Header = reqParams.Header
	}
}

// rspaceErrMsg is the error body the server formats for 4xx/5xx responses.
type rspaceErrMsg struct {
	Status       string   `json:"status"`
	HTTPCode     int      `json:"httpCode"`
	Message      string   `json:"message"`
	Errors       []string `json:"errors"`
	ErrorSummary string   `json:"errorSummary"`
}

func (em *rspaceErrMsg) text() string {
	msg := em.Message
	if msg == "" {
		msg = em.ErrorSummary
	}
	if len(em.Errors) > 0 {
		msg += " (" + strings.Join(em.Errors, "; ") + ")"
	}
	return msg
}

func (reqParams *ReqParams) checkResp(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	var em rspaceErrMsg
	if err := jsoniter.Unmarshal(body, &em); err == nil && em.text() != "" {
		return cmn.NewErrHTTP(reqParams.BaseParams.Method, reqParams.Path, em.text(), resp.StatusCode)
	}
	return cmn.NewErrHTTP(reqParams.BaseParams.Method, reqParams.Path, string(body), resp.StatusCode)
}
