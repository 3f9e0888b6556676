package pkg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAccountsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write accounts file: %v", err)
	}
	return path
}

func TestLoadAccounts(t *testing.T) {
	path := writeAccountsFile(t, `{
		"accounts": [
			{
				"name": "airdrop",
				"mainMnemonic": "main words",
				"sponsorMnemonic": "sponsor words",
				"receiverAddress": "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"
			},
			{
				"mainMnemonic": "other words",
				"sponsorMnemonic": "other sponsor words",
				"receiverAddress": "GB3MXH633VRECLZRUAR3QCLQJDMXNYNHKZCO6FJEWXVWSUEIS7NU376P"
			}
		]
	}`)

	accounts, err := LoadAccounts(path)
	if err != nil {
		t.Fatalf("LoadAccounts failed: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Name != "airdrop" {
		t.Errorf("expected name airdrop, got %q", accounts[0].Name)
	}
	if accounts[0].MainMnemonic != "main words" {
		t.Errorf("unexpected main mnemonic %q", accounts[0].MainMnemonic)
	}
	if accounts[1].SponsorMnemonic != "other sponsor words" {
		t.Errorf("unexpected sponsor mnemonic %q", accounts[1].SponsorMnemonic)
	}
	if accounts[1].Name != "" {
		t.Errorf("expected empty optional name, got %q", accounts[1].Name)
	}
}

func TestLoadAccountsMissingFile(t *testing.T) {
	if _, err := LoadAccounts(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadAccountsMalformed(t *testing.T) {
	path := writeAccountsFile(t, `{"accounts": [`)
	if _, err := LoadAccounts(path); err == nil {
		t.Fatal("expected an error for a malformed file")
	}
}

func TestLoadAccountsEmpty(t *testing.T) {
	path := writeAccountsFile(t, `{"accounts": []}`)
	if _, err := LoadAccounts(path); err == nil {
		t.Fatal("expected an error for an empty account list")
	}
}

func TestAccountConfigValidate(t *testing.T) {
	valid := AccountConfig{
		MainMnemonic:    "main",
		SponsorMnemonic: "sponsor",
		ReceiverAddress: "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid config without a name, got %v", err)
	}

	cases := []AccountConfig{
		{SponsorMnemonic: "sponsor", ReceiverAddress: "G..."},
		{MainMnemonic: "main", ReceiverAddress: "G..."},
		{MainMnemonic: "main", SponsorMnemonic: "sponsor"},
	}
	for i, account := range cases {
		if err := account.Validate(); err == nil {
			t.Errorf("case %d: expected a validation error", i)
		}
	}
}

func TestAccountConfigDisplayName(t *testing.T) {
	named := AccountConfig{Name: "airdrop", ReceiverAddress: "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"}
	if named.DisplayName() != "airdrop" {
		t.Errorf("expected the configured name, got %q", named.DisplayName())
	}

	// abbreviated form: first 5 and last 5 characters of the receiver
	unnamed := AccountConfig{ReceiverAddress: "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"}
	if unnamed.DisplayName() != "GDRXE..UJUJ6" {
		t.Errorf("unexpected display name %q", unnamed.DisplayName())
	}
}
