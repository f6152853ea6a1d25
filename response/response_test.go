package response

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"sin resultados", 1, 20, 0, 0, false, false},
		{"una sola página", 1, 20, 15, 1, false, false},
		{"página justa", 1, 20, 20, 1, false, false},
		{"primera de varias", 1, 20, 45, 3, true, false},
		{"página intermedia", 2, 20, 45, 3, true, true},
		{"última página", 3, 20, 45, 3, false, true},
		{"página fuera de rango", 9, 20, 45, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.hasNext)
			}
			if p.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.hasPrev)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Error("page/limit/total deben copiarse tal cual")
			}
		})
	}
}
