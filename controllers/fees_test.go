package controllers

import "testing"

func TestFeeUpdateFields(t *testing.T) {
	tests := []struct {
		name string
		req  FeeRequest
		exp  map[string]string
	}{
		{
			name: "status-only edit leaves other fields alone",
			req:  FeeRequest{Status: "due"},
			exp:  map[string]string{"status": "due"},
		},
		{
			name: "full edit writes everything",
			req:  FeeRequest{Month: "2026-03", Amount: 4500, PaidOn: "2026-03-02", Status: "paid"},
			exp: map[string]string{
				"month":   "2026-03",
				"amount":  "4500",
				"paid_on": "2026-03-02",
				"status":  "paid",
			},
		},
		{
			name: "invalid status ignored",
			req:  FeeRequest{Month: "2026-04", Status: "pending"},
			exp:  map[string]string{"month": "2026-04"},
		},
		{
			name: "empty request writes nothing",
			req:  FeeRequest{},
			exp:  map[string]string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fields := feeUpdateFields(tc.req)
			if len(fields) != len(tc.exp) {
				t.Fatalf("expected %d fields, got %d: %v", len(tc.exp), len(fields), fields)
			}
			for k, want := range tc.exp {
				if fields[k] != want {
					t.Fatalf("field %q: expected %q, got %q", k, want, fields[k])
				}
			}
		})
	}
}
