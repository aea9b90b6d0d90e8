package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/saadjs/apexfuel/internal/model"
	"github.com/saadjs/apexfuel/internal/store"
)

// Snapshot is the export format: the four persisted documents plus an export
// timestamp, in one JSON object.
type Snapshot struct {
	ExportedAt     time.Time                  `json:"exported_at"`
	Logs           map[string]model.DailyLog  `json:"logs"`
	Foods          []model.FoodItem           `json:"foods"`
	Checklists     []model.ChecklistCategory  `json:"checklists"`
	LastActiveDate string                     `json:"last_active_date"`
}

type ImportSummary struct {
	Days       int `json:"days"`
	Foods      int `json:"foods"`
	Checklists int `json:"checklists"`
}

// Export writes the full state as indented JSON.
func Export(st *store.Store, w io.Writer) error {
	if err := ensureReady(st); err != nil {
		return err
	}
	logs, err := st.Logs()
	if err != nil {
		return err
	}
	foods, _, err := st.Foods()
	if err != nil {
		return err
	}
	cats, _, err := st.Checklists()
	if err != nil {
		return err
	}
	marker, _, err := st.LastActiveDate()
	if err != nil {
		return err
	}
	snap := Snapshot{
		ExportedAt:     time.Now(),
		Logs:           logs,
		Foods:          foods,
		Checklists:     cats,
		LastActiveDate: marker,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Import loads a snapshot. With merge set, logs merge per date (unseen entry
// ids append, totals recompute), and foods and checklist categories upsert by
// id; otherwise the snapshot replaces the current state wholesale. Imported
// records pass through the same normalization and recomputation as a load, so
// a hand-edited snapshot cannot smuggle in drifted totals.
func Import(st *store.Store, r io.Reader, merge bool) (ImportSummary, error) {
	summary := ImportSummary{}
	if err := ensureReady(st); err != nil {
		return summary, err
	}
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return summary, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Logs == nil {
		snap.Logs = map[string]model.DailyLog{}
	}
	for key, day := range snap.Logs {
		day.Date = key
		recomputeTotals(&day)
		snap.Logs[key] = day
	}
	snap.Checklists, _ = NormalizeChecklists(snap.Checklists)

	logs, foods, cats := snap.Logs, snap.Foods, snap.Checklists
	if merge {
		var err error
		logs, foods, cats, err = mergeSnapshot(st, snap)
		if err != nil {
			return summary, err
		}
	}

	if err := st.PutLogs(logs); err != nil {
		return summary, err
	}
	if err := st.PutFoods(foods); err != nil {
		return summary, err
	}
	if err := st.PutChecklists(cats, DateKey(time.Now())); err != nil {
		return summary, err
	}
	summary.Days = len(logs)
	summary.Foods = len(foods)
	summary.Checklists = len(cats)
	return summary, nil
}

func mergeSnapshot(st *store.Store, snap Snapshot) (map[string]model.DailyLog, []model.FoodItem, []model.ChecklistCategory, error) {
	logs, err := st.Logs()
	if err != nil {
		return nil, nil, nil, err
	}
	for key, incoming := range snap.Logs {
		current, ok := logs[key]
		if !ok {
			logs[key] = incoming
			continue
		}
		seen := make(map[string]bool, len(current.Entries))
		for _, e := range current.Entries {
			seen[e.ID] = true
		}
		for _, e := range incoming.Entries {
			if !seen[e.ID] {
				current.Entries = append(current.Entries, e)
			}
		}
		recomputeTotals(&current)
		logs[key] = current
	}

	foods, _, err := st.Foods()
	if err != nil {
		return nil, nil, nil, err
	}
	foodIdx := make(map[string]int, len(foods))
	for i, f := range foods {
		foodIdx[f.ID] = i
	}
	for _, f := range snap.Foods {
		if i, ok := foodIdx[f.ID]; ok {
			foods[i] = f
			continue
		}
		foods = append(foods, f)
	}

	cats, _, err := st.Checklists()
	if err != nil {
		return nil, nil, nil, err
	}
	catIdx := make(map[string]int, len(cats))
	for i, c := range cats {
		catIdx[c.ID] = i
	}
	for _, c := range snap.Checklists {
		if i, ok := catIdx[c.ID]; ok {
			cats[i] = c
			continue
		}
		cats = append(cats, c)
	}

	return logs, foods, cats, nil
}
