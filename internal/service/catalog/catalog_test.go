package catalog

import (
	"context"
	"testing"

	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
)

func TestOptions(t *testing.T) {
	svc := NewCatalogService(0, logger.InitLogger("test", logger.LevelError))

	options, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options() unexpected error: %v", err)
	}

	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}

	wantOrder := []string{
		types.RideTypeUberX,
		types.RideTypeUberXL,
		types.RideTypeUberBlack,
		types.RideTypeUberPool,
	}
	for i, want := range wantOrder {
		if options[i].Type != want {
			t.Errorf("options[%d].Type = %q, want %q", i, options[i].Type, want)
		}
		if options[i].ID != i+1 {
			t.Errorf("options[%d].ID = %d, want %d", i, options[i].ID, i+1)
		}
	}

	wantPrices := []string{"$12", "$18", "$28", "$8"}
	for i, want := range wantPrices {
		if options[i].Price != want {
			t.Errorf("options[%d].Price = %q, want %q", i, options[i].Price, want)
		}
	}
}

func TestOptions_CallersGetOwnCopy(t *testing.T) {
	svc := NewCatalogService(0, logger.InitLogger("test", logger.LevelError))

	first, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options() unexpected error: %v", err)
	}
	first[0].Price = "$999"

	second, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options() unexpected error: %v", err)
	}
	if second[0].Price != "$12" {
		t.Fatalf("catalog mutated through a returned slice: price = %q", second[0].Price)
	}
}
