package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xhad/banks/pkg/config"
	"github.com/xhad/banks/pkg/journal"
	"github.com/xhad/banks/pkg/rates"
	"github.com/xhad/banks/pkg/scraper"
	"github.com/xhad/banks/pkg/sink"
	"github.com/xhad/banks/pkg/store"
	"github.com/xhad/banks/pkg/transform"
)

// Events lets the caller hook console UX onto pipeline stages without
// the pipeline knowing about colors or spinners.
type Events struct {
	StageStart func(stage string)
	StageDone  func(stage string)
}

type Pipeline struct {
	config *config.Config
	out    io.Writer
	events Events
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects console rendering, used by tests.
func (p *Pipeline) SetOutput(w io.Writer) { p.out = w }

func (p *Pipeline) SetEvents(events Events) { p.events = events }

func (p *Pipeline) stageStart(stage string) {
	if p.events.StageStart != nil {
		p.events.StageStart(stage)
	}
}

func (p *Pipeline) stageDone(stage string) {
	if p.events.StageDone != nil {
		p.events.StageDone(stage)
	}
}

// Run executes the whole pipeline strictly sequentially: fetch →
// extract → transform → CSV → store → queries. Any fatal error is
// returned after the milestones reached so far were logged; the store
// connection is closed on every exit path.
func (p *Pipeline) Run() error {
	log, err := journal.Open(p.config.Output.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	log.Log("Preliminaries complete. Initiating ETL process")

	s, err := scraper.NewWithConfig(scraper.ScraperConfig{
		BaseURL:    p.config.Source.URL,
		SectionID:  p.config.Source.SectionID,
		TableClass: p.config.Source.TableClass,
		UserAgent:  p.config.Source.UserAgent,
		MaxRecords: p.config.Source.MaxRecords,
		RateLimit:  p.config.Source.RateLimit,
		Timeout:    time.Duration(p.config.Source.TimeoutSec) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize scraper: %v", err)
	}

	p.stageStart("extract")
	records, err := s.Extract(p.config.Source.URL)
	if err != nil {
		return err
	}
	p.stageDone("extract")

	renderRecords(p.out, records)
	log.Log("Data extraction complete. Initiating Transformation process")

	table, err := rates.Load(p.config.Rates.Path)
	if err != nil {
		return err
	}

	p.stageStart("transform")
	enriched := transform.Convert(records, table)
	p.stageDone("transform")

	renderEnriched(p.out, enriched)
	log.Log("Data transformation complete. Initiating Loading process")

	if err := sink.WriteCSV(p.config.Output.CSVPath, enriched); err != nil {
		return err
	}
	log.Log("Data saved to CSV file")

	st, err := store.NewWithConfig(store.StoreConfig{
		Driver:    p.config.Database.Driver,
		DSN:       p.config.Database.DSN,
		TableName: p.config.Database.TableName,
	})
	if err != nil {
		return err
	}
	log.Log("SQL Connection initiated")

	defer func() {
		st.Close()
		log.Log("Server Connection closed")
	}()

	p.stageStart("load")
	if err := st.Replace(enriched); err != nil {
		return err
	}
	p.stageDone("load")
	log.Log("Data loaded to Database as a table, Executing queries")

	queries := []string{
		fmt.Sprintf("SELECT * FROM %s", p.config.Database.TableName),
		fmt.Sprintf("SELECT AVG(MC_GBP_Billion) FROM %s", p.config.Database.TableName),
		fmt.Sprintf("SELECT Name FROM %s LIMIT 5", p.config.Database.TableName),
	}

	for _, query := range queries {
		log.Logf("Executing query: %s", query)
		result, err := st.Run(query)
		if err != nil {
			return err
		}
		renderResult(p.out, result)
	}

	log.Log("Process Complete")

	return nil
}
