package oned

import barscan "github.com/corvidlabs/barscan"

func init() {
	// Register all 1D readers via the multi-format 1D reader.
	oneDReaderFactory := func(opts *barscan.DecodeOptions) barscan.Reader {
		return NewMultiFormatOneDReader(opts)
	}
	barscan.RegisterReader(barscan.FormatCode128, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatCode39, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatEAN13, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatEAN8, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatUPCA, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatUPCE, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatITF, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatCodabar, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatRSS14, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatRSSExpanded, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatCode93, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatTelepen, oneDReaderFactory)
	barscan.RegisterReader(barscan.FormatDXFilmEdge, oneDReaderFactory)

	// Register writers
	barscan.RegisterWriter(barscan.FormatCode128, func() barscan.Writer { return NewCode128Writer() })
	barscan.RegisterWriter(barscan.FormatCode39, func() barscan.Writer { return NewCode39Writer() })
	barscan.RegisterWriter(barscan.FormatEAN13, func() barscan.Writer { return NewEAN13Writer() })
	barscan.RegisterWriter(barscan.FormatEAN8, func() barscan.Writer { return NewEAN8Writer() })
	barscan.RegisterWriter(barscan.FormatUPCA, func() barscan.Writer { return NewUPCAWriter() })
	barscan.RegisterWriter(barscan.FormatUPCE, func() barscan.Writer { return NewUPCEWriter() })
	barscan.RegisterWriter(barscan.FormatITF, func() barscan.Writer { return NewITFWriter() })
	barscan.RegisterWriter(barscan.FormatCodabar, func() barscan.Writer { return NewCodabarWriter() })
	barscan.RegisterWriter(barscan.FormatCode93, func() barscan.Writer { return NewCode93Writer() })
}
