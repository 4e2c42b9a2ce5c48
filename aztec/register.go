package aztec

import barscan "github.com/corvidlabs/barscan"

func init() {
	barscan.RegisterReader(barscan.FormatAztec, func(opts *barscan.DecodeOptions) barscan.Reader {
		return NewReader()
	})
	barscan.RegisterWriter(barscan.FormatAztec, func() barscan.Writer {
		return NewWriter()
	})
}
