// README: Catalog store backed by PostgreSQL; operators edit the tables, the service reads them once at startup.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load reads every catalog table and returns the validated Catalog.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	d, err := s.LoadData(ctx)
	if err != nil {
		return nil, err
	}
	c, err := New(d)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

func (s *Store) LoadData(ctx context.Context) (Data, error) {
	d := Data{
		PortMultipliers:  map[string]float64{},
		StyleMultipliers: map[string]float64{},
	}

	vessels, err := s.db.Query(ctx, `
SELECT name, base_rate, capacity, style
FROM catalog_vessels
ORDER BY position, name`)
	if err != nil {
		return Data{}, fmt.Errorf("query vessels: %w", err)
	}
	d.Vessels, err = pgx.CollectRows(vessels, func(row pgx.CollectableRow) (VesselClass, error) {
		var v VesselClass
		err := row.Scan(&v.Name, &v.BaseRate, &v.Capacity, &v.Style)
		return v, err
	})
	if err != nil {
		return Data{}, fmt.Errorf("scan vessels: %w", err)
	}

	ports, err := s.db.Query(ctx, `
SELECT id, name, tagline, scenic_highlight, multiplier
FROM catalog_ports
ORDER BY position, id`)
	if err != nil {
		return Data{}, fmt.Errorf("query ports: %w", err)
	}
	defer ports.Close()
	for ports.Next() {
		var (
			p      PortEntry
			factor *float64
		)
		if err := ports.Scan(&p.ID, &p.Name, &p.Tagline, &p.ScenicHighlight, &factor); err != nil {
			return Data{}, fmt.Errorf("scan port: %w", err)
		}
		if factor != nil {
			d.PortMultipliers[p.ID] = *factor
		}
		d.Ports = append(d.Ports, p)
	}
	if err := ports.Err(); err != nil {
		return Data{}, fmt.Errorf("iterate ports: %w", err)
	}

	allowed, err := s.allowedVessels(ctx)
	if err != nil {
		return Data{}, err
	}
	for i := range d.Ports {
		d.Ports[i].Vessels = allowed[d.Ports[i].ID]
	}

	styles, err := s.db.Query(ctx, `
SELECT id, label, multiplier
FROM catalog_styles
ORDER BY position, id`)
	if err != nil {
		return Data{}, fmt.Errorf("query styles: %w", err)
	}
	defer styles.Close()
	for styles.Next() {
		var (
			st     TravelStyle
			factor *float64
		)
		if err := styles.Scan(&st.ID, &st.Label, &factor); err != nil {
			return Data{}, fmt.Errorf("scan style: %w", err)
		}
		if factor != nil {
			d.StyleMultipliers[st.ID] = *factor
		}
		d.Styles = append(d.Styles, st)
	}
	if err := styles.Err(); err != nil {
		return Data{}, fmt.Errorf("iterate styles: %w", err)
	}

	return d, nil
}

func (s *Store) allowedVessels(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.Query(ctx, `
SELECT port_id, vessel_name
FROM catalog_port_vessels
ORDER BY port_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query port vessels: %w", err)
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var portID, vessel string
		if err := rows.Scan(&portID, &vessel); err != nil {
			return nil, fmt.Errorf("scan port vessel: %w", err)
		}
		out[portID] = append(out[portID], vessel)
	}
	return out, rows.Err()
}

// Seed writes the given reference data into empty catalog tables. It is a no-op when
// any port already exists, so operator edits are never overwritten.
func (s *Store) Seed(ctx context.Context, d Data) error {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_ports`).Scan(&count); err != nil {
		return fmt.Errorf("count ports: %w", err)
	}
	if count > 0 {
		return nil
	}

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, v := range d.Vessels {
			batch.Queue(`INSERT INTO catalog_vessels (name, base_rate, capacity, style, position) VALUES ($1, $2, $3, $4, $5)`,
				v.Name, v.BaseRate, v.Capacity, v.Style, i)
		}
		for i, p := range d.Ports {
			var factor *float64
			if f, ok := d.PortMultipliers[p.ID]; ok {
				factor = &f
			}
			batch.Queue(`INSERT INTO catalog_ports (id, name, tagline, scenic_highlight, multiplier, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, p.Name, p.Tagline, p.ScenicHighlight, factor, i)
			for j, name := range p.Vessels {
				batch.Queue(`INSERT INTO catalog_port_vessels (port_id, vessel_name, position) VALUES ($1, $2, $3)`,
					p.ID, name, j)
			}
		}
		for i, st := range d.Styles {
			var factor *float64
			if f, ok := d.StyleMultipliers[st.ID]; ok {
				factor = &f
			}
			batch.Queue(`INSERT INTO catalog_styles (id, label, multiplier, position) VALUES ($1, $2, $3, $4)`,
				st.ID, st.Label, factor, i)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		return nil
	})
}
