package slp_test

import (
	"github.com/jrh3k5/slp-utils/internal/slp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValidateAddress", func() {
	DescribeTable("accepted addresses", func(address string) {
		Expect(slp.ValidateAddress(address)).To(Succeed())
	},
		Entry("simpleledger cashaddr", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("upper-case simpleledger cashaddr", "SIMPLELEDGER:QZV3ZZ2TRZ0XGP6A96LU4M6VP2NKWAG0KVYUCJZQT9"),
		Entry("bitcoincash cashaddr", "bitcoincash:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvg8nfhq4m"),
		Entry("prefix-less simpleledger payload", "qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("prefix-less bitcoincash payload", "qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvg8nfhq4m"),
		Entry("legacy base58 address", "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu"),
	)

	DescribeTable("rejected addresses", func(address string) {
		Expect(slp.ValidateAddress(address)).To(MatchError(slp.ErrInvalidAddress))
	},
		Entry("empty", ""),
		Entry("bad cashaddr checksum", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt8"),
		Entry("payload under the wrong prefix", "bitcoincash:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("unsupported prefix", "bchtest:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("mixed case", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzQT9"),
		Entry("character outside the charset", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqtb"),
		Entry("bad legacy checksum", "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggv"),
		Entry("not base58", "0OIl"),
	)
})

var _ = Describe("NormalizeAddress", func() {
	DescribeTable("canonical forms", func(address string, expected string) {
		normalized, err := slp.NormalizeAddress(address)
		Expect(err).ToNot(HaveOccurred())
		Expect(normalized).To(Equal(expected))
	},
		Entry("simpleledger cashaddr", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("upper-case cashaddr", "SIMPLELEDGER:QZV3ZZ2TRZ0XGP6A96LU4M6VP2NKWAG0KVYUCJZQT9", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("bare simpleledger payload", " qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9 ", "simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt9"),
		Entry("bare bitcoincash payload", "qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvg8nfhq4m", "bitcoincash:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvg8nfhq4m"),
		Entry("legacy address", "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu", "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu"),
	)

	It("rejects an invalid address", func() {
		_, err := slp.NormalizeAddress("simpleledger:qzv3zz2trz0xgp6a96lu4m6vp2nkwag0kvyucjzqt8")
		Expect(err).To(MatchError(slp.ErrInvalidAddress))
	})
})

var _ = Describe("ValidateTokenID", func() {
	It("accepts a 64-character hex string", func() {
		Expect(slp.ValidateTokenID("4276533bb702e7f8c9afd8aa61ebf016e95011dc3d54e55faa847ac1dd461e84")).To(Succeed())
	})

	It("rejects a short string", func() {
		Expect(slp.ValidateTokenID("4276533b")).To(MatchError(slp.ErrInvalidTokenID))
	})

	It("rejects non-hex characters", func() {
		Expect(slp.ValidateTokenID("zz76533bb702e7f8c9afd8aa61ebf016e95011dc3d54e55faa847ac1dd461e84")).
			To(MatchError(slp.ErrInvalidTokenID))
	})
})

var _ = Describe("ValidateTxid", func() {
	It("accepts a 64-character hex string", func() {
		Expect(slp.ValidateTxid("df808a41672a0a0ae6475b44f272a107bc9961b90f29dc918d71301f24fe92fb")).To(Succeed())
	})

	It("rejects an empty string", func() {
		Expect(slp.ValidateTxid("")).To(MatchError(slp.ErrInvalidTxid))
	})
})
