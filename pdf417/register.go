package pdf417

import barscan "github.com/corvidlabs/barscan"

func init() {
	barscan.RegisterReader(barscan.FormatPDF417, func(opts *barscan.DecodeOptions) barscan.Reader {
		return NewPDF417Reader()
	})
	barscan.RegisterWriter(barscan.FormatPDF417, func() barscan.Writer {
		return NewPDF417Writer()
	})
}
