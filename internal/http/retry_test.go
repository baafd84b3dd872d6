package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jarcoal/httpmock"
	ctshttp "github.com/jrh3k5/slp-utils/internal/http"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RetryingDoer", func() {
	const requestURL = "http://example.local/slp/list"

	var doer *ctshttp.RetryingDoer

	BeforeEach(func() {
		doer = ctshttp.NewRetryingDoer(
			client,
			ctshttp.WithMaxRetries(2),
			ctshttp.WithRetryDelay(time.Millisecond),
			ctshttp.WithMaxDelay(5*time.Millisecond),
		)
	})

	newRequest := func(method string, body io.Reader) *http.Request {
		req, err := http.NewRequestWithContext(context.Background(), method, requestURL, body)
		Expect(err).ToNot(HaveOccurred())

		return req
	}

	It("retries a server error and returns the eventual success", func() {
		var calls int
		httpmock.RegisterResponder("GET", requestURL, func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return httpmock.NewStringResponse(http.StatusServiceUnavailable, ""), nil
			}

			return httpmock.NewStringResponse(http.StatusOK, "[]"), nil
		})

		resp, err := doer.Do(newRequest(http.MethodGet, nil))
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = resp.Body.Close() }()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(calls).To(Equal(2))
	})

	It("replays the request body on retry", func() {
		var bodies []string
		httpmock.RegisterResponder("POST", requestURL, func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			bodies = append(bodies, string(body))
			if len(bodies) == 1 {
				return httpmock.NewStringResponse(http.StatusTooManyRequests, ""), nil
			}

			return httpmock.NewStringResponse(http.StatusOK, "[]"), nil
		})

		resp, err := doer.Do(newRequest(http.MethodPost, strings.NewReader(`{"txids":["abc"]}`)))
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = resp.Body.Close() }()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(bodies).To(Equal([]string{`{"txids":["abc"]}`, `{"txids":["abc"]}`}))
	})

	When("the server keeps failing", func() {
		It("returns the last response once retries are exhausted", func() {
			var calls int
			httpmock.RegisterResponder("GET", requestURL, func(req *http.Request) (*http.Response, error) {
				calls++

				return httpmock.NewStringResponse(http.StatusInternalServerError, "boom"), nil
			})

			resp, err := doer.Do(newRequest(http.MethodGet, nil))
			Expect(err).ToNot(HaveOccurred())
			defer func() { _ = resp.Body.Close() }()

			Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(calls).To(Equal(3))
		})
	})

	It("does not retry a client error", func() {
		var calls int
		httpmock.RegisterResponder("GET", requestURL, func(req *http.Request) (*http.Response, error) {
			calls++

			return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
		})

		resp, err := doer.Do(newRequest(http.MethodGet, nil))
		Expect(err).ToNot(HaveOccurred())
		defer func() { _ = resp.Body.Close() }()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(calls).To(Equal(1))
	})

	When("there is a network error from the HTTP client", func() {
		It("returns an error after exhausting the retries", func() {
			httpmock.RegisterResponder("GET", requestURL, httpmock.NewErrorResponder(errors.New("network error")))

			resp, err := doer.Do(newRequest(http.MethodGet, nil))
			Expect(resp).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("request failed after 3 attempt(s)"))
			Expect(err.Error()).To(ContainSubstring("network error"))
		})
	})

	When("the wrapped client is nil", func() {
		It("returns an error", func() {
			resp, err := ctshttp.NewRetryingDoer(nil).Do(newRequest(http.MethodGet, nil))
			Expect(resp).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("http client is nil")))
		})
	})
})
