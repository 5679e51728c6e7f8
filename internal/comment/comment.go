// Package comment renders pipeline output into the comment body posted to
// the pull request.
package comment

import (
	"fmt"
	"strings"
	"text/template"
)

var detailsTemplate = template.Must(template.New("comment").Parse(`<details>
<summary>{{.Summary}}</summary>

{{.ChunkReviews}}
</details>
`))

// Format renders the final comment body. A single chunk review is returned
// verbatim; several are wrapped so the summary stays visible while the
// per-chunk detail, joined in original chunk order, collapses beneath it.
func Format(summary string, chunkReviews []string) string {
	if len(chunkReviews) == 1 {
		return summary
	}

	joined := strings.Join(chunkReviews, "\n")
	data := struct {
		Summary      string
		ChunkReviews string
	}{
		Summary:      summary,
		ChunkReviews: joined,
	}

	var sb strings.Builder
	if err := detailsTemplate.Execute(&sb, data); err != nil {
		// Fallback to plain concatenation if the template fails
		return fmt.Sprintf("%s\n\n%s\n", summary, joined)
	}
	return sb.String()
}
