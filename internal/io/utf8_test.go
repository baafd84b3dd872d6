package io_test

import (
	"bytes"
	"io"

	iopkg "github.com/jrh3k5/slp-utils/internal/io"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StripUTF8BOM", func() {
	DescribeTable("reading through the stripped reader",
		func(src []byte, expected []byte) {
			b, err := io.ReadAll(iopkg.StripUTF8BOM(bytes.NewReader(src)))
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(Equal(expected))
		},
		Entry("leading BOM", append([]byte{0xEF, 0xBB, 0xBF}, []byte("network: testnet")...), []byte("network: testnet")),
		Entry("no BOM", []byte("network: testnet"), []byte("network: testnet")),
		Entry("incomplete BOM", []byte{0xEF, 0xBB}, []byte{0xEF, 0xBB}),
		Entry("empty reader", []byte{}, []byte{}),
	)
})
