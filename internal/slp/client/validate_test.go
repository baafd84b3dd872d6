package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jarcoal/httpmock"
	"github.com/jrh3k5/slp-utils/internal/slp"
	clientpkg "github.com/jrh3k5/slp-utils/internal/slp/client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	_ "embed"
)

//go:embed testdata/validate_txid.json
var validateTxidJSON string

var _ = Describe("ValidateTxid", func() {
	It("validates an SLP txid on mainnet", func() {
		httpmock.RegisterResponder(
			"POST",
			"https://rest.bitcoin.com/v2/slp/validateTxid",
			func(req *http.Request) (*http.Response, error) {
				Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

				body, _ := io.ReadAll(req.Body)
				var payload map[string][]string
				Expect(json.Unmarshal(body, &payload)).To(Succeed())
				Expect(payload["txids"]).To(Equal([]string{nakaTokenID}))

				return httpmock.NewStringResponse(http.StatusOK, validateTxidJSON), nil
			},
		)

		isValid, err := clientpkg.NewClient(httpClient).ValidateTxid(context.Background(), nakaTokenID, slp.Mainnet)
		Expect(err).ToNot(HaveOccurred())
		Expect(isValid).To(BeTrue())
	})

	It("sends testnet validation to the testnet REST URL regardless of the default network", func() {
		httpmock.RegisterResponder(
			"POST",
			"https://trest.bitcoin.com/v2/slp/validateTxid",
			httpmock.NewStringResponder(
				http.StatusOK,
				`[{"txid":"`+nakaTokenID+`","valid":false,"invalidReason":"Token outputs are greater than valid token inputs."}]`,
			),
		)

		isValid, err := clientpkg.NewClient(httpClient).ValidateTxid(context.Background(), nakaTokenID, slp.Testnet)
		Expect(err).ToNot(HaveOccurred())
		Expect(isValid).To(BeFalse())
	})

	It("validates an upper-case txid against the lower-case txid the server reports", func() {
		httpmock.RegisterResponder(
			"POST",
			"https://rest.bitcoin.com/v2/slp/validateTxid",
			func(req *http.Request) (*http.Response, error) {
				body, _ := io.ReadAll(req.Body)
				var payload map[string][]string
				Expect(json.Unmarshal(body, &payload)).To(Succeed())
				Expect(payload["txids"]).To(Equal([]string{nakaTokenID}))

				return httpmock.NewStringResponse(http.StatusOK, validateTxidJSON), nil
			},
		)

		isValid, err := clientpkg.NewClient(httpClient).
			ValidateTxid(context.Background(), strings.ToUpper(nakaTokenID), slp.Mainnet)
		Expect(err).ToNot(HaveOccurred())
		Expect(isValid).To(BeTrue())
	})

	When("the response has no entry for the txid", func() {
		It("returns ErrNoValidationResult", func() {
			httpmock.RegisterResponder(
				"POST",
				"https://rest.bitcoin.com/v2/slp/validateTxid",
				httpmock.NewStringResponder(http.StatusOK, `[null]`),
			)

			isValid, err := clientpkg.NewClient(httpClient).ValidateTxid(context.Background(), nakaTokenID, slp.Mainnet)
			Expect(isValid).To(BeFalse())
			Expect(err).To(MatchError(clientpkg.ErrNoValidationResult))
		})
	})

	When("the network is unknown", func() {
		It("returns an error without issuing a request", func() {
			_, err := clientpkg.NewClient(httpClient).ValidateTxid(context.Background(), nakaTokenID, "regtest")
			Expect(err).To(MatchError(slp.ErrUnknownNetwork))
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})

	When("the txid is malformed", func() {
		It("returns an error without issuing a request", func() {
			_, err := clientpkg.NewClient(httpClient).ValidateTxid(context.Background(), "abc", slp.Mainnet)
			Expect(err).To(MatchError(slp.ErrInvalidTxid))
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})
})

var _ = Describe("ValidateTxids", func() {
	It("validates several txids in one request and drops null entries", func() {
		httpmock.RegisterResponder(
			"POST",
			"https://rest.bitcoin.com/v2/slp/validateTxid",
			httpmock.NewStringResponder(
				http.StatusOK,
				`[{"txid":"`+nakaTokenID+`","valid":true},null,{"txid":"`+trvTokenID+`","valid":false,"invalidReason":"Not an SLP transaction."}]`,
			),
		)

		results, err := clientpkg.NewClient(httpClient).
			ValidateTxids(context.Background(), slp.Mainnet, nakaTokenID, trvTokenID)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Valid).To(BeTrue())
		Expect(results[1].Txid).To(Equal(trvTokenID))
		Expect(results[1].Valid).To(BeFalse())
		Expect(results[1].InvalidReason).To(Equal("Not an SLP transaction."))
		Expect(httpmock.GetTotalCallCount()).To(Equal(1))
	})

	It("requires at least one txid", func() {
		_, err := clientpkg.NewClient(httpClient).ValidateTxids(context.Background(), slp.Mainnet)
		Expect(err).To(MatchError(ContainSubstring("at least one txid is required")))
	})
})
