// README: Bench cases: reference scenarios, season bands, error mapping, catalog tables and throughput.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

type quoteResp struct {
	Estimate   int64    `json:"estimate"`
	Advisories []string `json:"advisories"`
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	quotes := base + "/api/quotes"
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "catalog DB reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "apply catalog migration",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				sql, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, s := range splitSQL(string(sql)) {
					if _, err := r.db.Exec(ctx, s); err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: catalog tables exist",
			Focus: "tables from the migration are present",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS", Note: fmt.Sprintf("tables=%d", len(tables))}
			},
		},
		httpCaseMethod("API: health", http.MethodGet, base+"/health", nil, http.StatusOK),
		httpCaseMethod("API: ports", http.MethodGet, base+"/api/ports", nil, http.StatusOK),
		httpCaseMethod("API: styles", http.MethodGet, base+"/api/styles", nil, http.StatusOK),
		httpCaseMethod("API: metrics", http.MethodGet, base+"/metrics", nil, http.StatusOK),

		// Reference scenarios
		quoteCase("Quote: A haifa catamaran sunset", quotes, map[string]any{
			"port_id": "haifa", "vessel_class": "Luxury Catamaran", "passengers": 8, "travel_style_id": "sunset",
		}, 5510, ""),
		quoteCase("Quote: B haifa catamaran over capacity", quotes, map[string]any{
			"port_id": "haifa", "vessel_class": "Luxury Catamaran", "passengers": 14, "travel_style_id": "sunset",
		}, 6150, "tandem charter"),
		quoteCase("Quote: C limassol superyacht executive July", quotes, map[string]any{
			"port_id": "limassol", "vessel_class": "Mediterranean Superyacht", "passengers": 10,
			"sail_date": "2026-07-09", "travel_style_id": "executive",
		}, 18890, "Peak Mediterranean light"),
		quoteCase("Quote: D no vessel selected", quotes, map[string]any{
			"port_id": "athens", "passengers": 8,
		}, 0, ""),

		// Season bands
		quoteCase("Season: May is peak advisory, base price", quotes, map[string]any{
			"port_id": "haifa", "vessel_class": "Luxury Catamaran", "passengers": 8, "sail_date": "2026-05-10",
		}, 5510, "Peak"),
		quoteCase("Season: August is off-peak advisory, summer price", quotes, map[string]any{
			"port_id": "haifa", "vessel_class": "Luxury Catamaran", "passengers": 8, "sail_date": "2026-08-10",
		}, 6330, "Off-peak"),

		// Error mapping
		httpCase("Error: missing passengers -> 400", quotes, map[string]any{"port_id": "haifa"}, http.StatusBadRequest),
		httpCase("Error: unknown port -> 404", quotes, map[string]any{
			"port_id": "eilat", "vessel_class": "Luxury Catamaran", "passengers": 8,
		}, http.StatusNotFound),
		httpCase("Error: vessel not at port -> 409", quotes, map[string]any{
			"port_id": "athens", "vessel_class": "Luxury Catamaran", "passengers": 8,
		}, http.StatusConflict),
		httpCase("Selection: reconcile after port change", base+"/api/selection/reconcile", map[string]any{
			"port_id": "athens", "vessel_class": "Luxury Catamaran",
		}, http.StatusOK),

		// Performance
		{
			Name:  "Perf: quote throughput",
			Focus: "sustained quote requests",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, quotes, map[string]any{
					"port_id": "jaffa", "vessel_class": "Performance Monohull", "passengers": 6,
				})
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses ...int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses...)
}

func httpCaseMethod(name, method, url string, body any, okStatuses ...int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if contains(okStatuses, status) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

// quoteCase checks the estimate and, when advisory is set, that some advisory line contains it.
func quoteCase(name, url string, body any, estimate int64, advisory string) TestCase {
	return TestCase{
		Name:  name,
		Focus: "Quote",
		Run: func(ctx context.Context, r *Runner) Result {
			status, raw, latency, err := r.do(ctx, http.MethodPost, url, body)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if status != http.StatusOK {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			var got quoteResp
			if err := json.Unmarshal(raw, &got); err != nil {
				return Result{Status: "FAIL", Latency: latency, Note: err.Error()}
			}
			if got.Estimate != estimate {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("estimate=%d want=%d", got.Estimate, estimate)}
			}
			if advisory != "" && !containsLine(got.Advisories, advisory) {
				return Result{Status: "FAIL", Latency: latency, Note: "no advisory mentions " + advisory}
			}
			return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("estimate=%d", got.Estimate)}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, time.Since(start), err
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				if resp.StatusCode == http.StatusOK {
					count++
				} else {
					errCount++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func containsLine(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
