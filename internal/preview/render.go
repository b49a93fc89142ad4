package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

// Форматы вывода
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type blockOutput struct {
	ID          string `json:"id"`
	RecurringID string `json:"recurringId"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsRecurring bool   `json:"isRecurring"`
}

// Render печатает блоки в таблице или JSON, время в таймзоне zone
func Render(w io.Writer, blocks []domain.VirtualBlock, zone civiltime.Zone, format string) error {
	switch format {
	case FormatJSON:
		out := make([]blockOutput, len(blocks))
		for i, b := range blocks {
			out[i] = blockOutput{
				ID:          b.ID,
				RecurringID: b.RecurringID.String(),
				Title:       b.Title,
				Start:       b.Start.In(zone.Location()).Format(time.RFC3339),
				End:         b.End.In(zone.Location()).Format(time.RFC3339),
				IsRecurring: true,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case FormatTable, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tWEEKDAY\tSTART\tEND\tTITLE\tID")
		for _, b := range blocks {
			start := b.Start.In(zone.Location())
			end := b.End.In(zone.Location())
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				zone.DateKey(start), start.Weekday().String()[:3],
				start.Format(domain.TimeFormat), end.Format(domain.TimeFormat),
				b.Title, b.ID)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
