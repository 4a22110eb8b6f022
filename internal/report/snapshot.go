// Package report materializes a finished run: the JSON output file, the
// console summary and spreadsheet exports.
package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/pipeline"
)

// Snapshot is the persisted result of a run.
type Snapshot struct {
	PrioritizedLeads []Entry `json:"prioritized_leads"`
}

// Entry is one ranked lead in the output file.
type Entry struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Company             string               `json:"company"`
	Qualification       model.Qualification  `json:"qualification"`
	Prioritization      model.Prioritization `json:"prioritization"`
	RecommendedApproach string               `json:"recommended_approach"`
}

// Build collects the prioritized leads of st in ranked order.
func Build(st *pipeline.State) Snapshot {
	entries := make([]Entry, 0, len(st.Prioritized))
	for _, b := range st.Prioritized {
		e := Entry{
			ID:                  b.Lead.ID,
			Name:                b.Lead.Name,
			Company:             b.Lead.Company,
			Qualification:       b.Qualification,
			RecommendedApproach: st.Approaches[b.Lead.ID],
		}
		if b.Prioritization != nil {
			e.Prioritization = *b.Prioritization
		}
		entries = append(entries, e)
	}
	return Snapshot{PrioritizedLeads: entries}
}

// Approaches returns the lead id to approach mapping of the snapshot.
func (s Snapshot) Approaches() map[string]string {
	out := make(map[string]string, len(s.PrioritizedLeads))
	for _, e := range s.PrioritizedLeads {
		out[e.ID] = e.RecommendedApproach
	}
	return out
}

// Encode writes s as JSON indented with two spaces.
func Encode(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return eris.Wrap(err, "report: encode snapshot")
	}
	return nil
}

// WriteJSON writes s to path, replacing any existing file.
func WriteJSON(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	if err := Encode(f, s); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "report: close %s", path)
	}
	return nil
}

// ReadJSON loads a snapshot written by WriteJSON.
func ReadJSON(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, eris.Wrapf(err, "report: read %s", path)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, eris.Wrapf(err, "report: decode %s", path)
	}
	if s.PrioritizedLeads == nil {
		s.PrioritizedLeads = []Entry{}
	}
	return s, nil
}
