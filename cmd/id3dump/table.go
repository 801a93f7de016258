package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/irh/Symphonia/id3v2"
)

func renderTag(w io.Writer, path string, tag *id3v2.Tag, opts options) {
	h := tag.Header
	fmt.Fprintf(w, "%s: %s, %d byte body, %d frames\n", path, h.Version(), h.Size, len(tag.Frames))

	if flags := headerFlagNames(h); len(flags) > 0 {
		fmt.Fprintf(w, "  flags: %s\n", strings.Join(flags, ", "))
	}
	if eh := tag.Extended; eh != nil {
		renderExtendedHeader(w, h.MajorVersion, eh)
	}

	if opts.Frames && len(tag.Frames) > 0 {
		fmt.Fprintln(w, renderFrameTable(tag.Frames, opts.Preview))
	}
}

func headerFlagNames(h id3v2.Header) []string {
	var names []string
	if h.Unsynchronisation {
		names = append(names, "unsynchronised")
	}
	if h.HasExtendedHeader {
		names = append(names, "extended header")
	}
	if h.Experimental {
		names = append(names, "experimental")
	}
	if h.HasFooter {
		names = append(names, "footer")
	}
	return names
}

func renderExtendedHeader(w io.Writer, major uint8, eh *id3v2.ExtendedHeader) {
	if major == 3 {
		fmt.Fprintf(w, "  padding: %d bytes\n", eh.PaddingSize)
	}
	if eh.HasCRC {
		fmt.Fprintf(w, "  crc32: %#08x\n", eh.CRC32)
	}
	if eh.IsUpdate {
		fmt.Fprintln(w, "  update of an earlier tag")
	}
	if r := eh.Restrictions; r != nil {
		fmt.Fprintf(w, "  restrictions: tag size %s; text encoding %s; text fields %s; image encoding %s; image size %s\n",
			r.TagSize, r.TextEncoding, r.TextFieldSize, r.ImageEncoding, r.ImageSize)
	}
}

func renderFrameTable(frames []id3v2.Frame, preview int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Size", "Flags", "Payload"})

	for _, f := range frames {
		tw.AppendRow(table.Row{f.ID, f.Size, fmt.Sprintf("%#04x", f.Flags), previewString(f.Data, preview)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// previewString renders up to n payload bytes, substituting dots for
// anything outside printable ASCII.
func previewString(data []byte, n int) string {
	truncated := len(data) > n
	if truncated {
		data = data[:n]
	}
	var b strings.Builder
	for _, x := range data {
		if x >= 0x20 && x < 0x7f {
			b.WriteByte(x)
		} else {
			b.WriteByte('.')
		}
	}
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}
