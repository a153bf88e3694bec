package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validUsers() []Credential {
	return []Credential{{Username: "admin", Password: "admin", Role: RoleAdmin, Modules: ModuleNames}}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "memory backend",
			cfg:  Config{Store: StoreMemory, Users: validUsers()},
		},
		{
			name: "sqlite backend needs no dsn",
			cfg:  Config{Store: StoreSQLite, Users: validUsers()},
		},
		{
			name:    "empty store",
			cfg:     Config{Users: validUsers()},
			wantErr: ErrStoreEmpty,
		},
		{
			name:    "unknown store",
			cfg:     Config{Store: "redis", Users: validUsers()},
			wantErr: ErrStoreUnknown,
		},
		{
			name:    "xlsx without workbook",
			cfg:     Config{Store: StoreXLSX, Users: validUsers()},
			wantErr: ErrWorkbookEmpty,
		},
		{
			name: "xlsx with workbook",
			cfg:  Config{Store: StoreXLSX, Workbook: "board.xlsx", Users: validUsers()},
		},
		{
			name:    "gsheets without spreadsheet id",
			cfg:     Config{Store: StoreGSheets, Users: validUsers()},
			wantErr: ErrSpreadsheetID,
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Store: StorePostgres, Users: validUsers()},
			wantErr: ErrDSNEmpty,
		},
		{
			name:    "no users",
			cfg:     Config{Store: StoreMemory},
			wantErr: ErrNoUsers,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
