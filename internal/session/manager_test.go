package session

import (
	"errors"
	"testing"
	"time"
)

func TestLogin_CreatesSingleActiveSession(t *testing.T) {
	m, _ := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	pair, loggedIn, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("user id = %q, want %q", loggedIn.ID, user.ID)
	}

	claims, err := m.Issuer.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("access token user = %q, want %q", claims.UserID, user.ID)
	}

	rows := activeTokens(t, m, user.ID)
	if len(rows) != 1 {
		t.Fatalf("active rows = %d, want 1", len(rows))
	}
	if rows[0].Token != pair.RefreshToken {
		t.Fatal("stored token does not match issued refresh token")
	}
}

func TestLogin_EnumerationResistance(t *testing.T) {
	m, _ := testManager(t)
	mustRegister(t, m, "alice", "alice", "secret")

	_, _, errUnknown := m.Login("nobody", "whatever")
	_, _, errWrongPwd := m.Login("alice", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", errWrongPwd)
	}
	if errUnknown.Error() != errWrongPwd.Error() {
		t.Fatal("unknown-user and wrong-password must be indistinguishable")
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	m, now := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	oldToken := pair.RefreshToken
	oldRow, err := m.Store.FindByToken(oldToken)
	if err != nil || oldRow == nil {
		t.Fatalf("FindByToken: row=%v err=%v", oldRow, err)
	}

	*now = now.Add(5 * time.Minute)

	rotated, err := m.Refresh(oldToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if rotated.RefreshToken == oldToken {
		t.Fatal("refresh must rotate the token")
	}

	refreshed, err := m.Store.FindByToken(oldToken)
	if err != nil {
		t.Fatalf("FindByToken error: %v", err)
	}
	if !refreshed.Revoked {
		t.Fatal("old token must be revoked after rotation")
	}

	rows := activeTokens(t, m, user.ID)
	if len(rows) != 1 {
		t.Fatalf("active rows = %d, want 1", len(rows))
	}
	if !rows[0].ExpiresAt.After(oldRow.ExpiresAt) {
		t.Fatal("rotated token must expire later than the old one")
	}
}

func TestRefresh_UnknownToken(t *testing.T) {
	m, _ := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	if _, _, err := m.Login("alice", "secret"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// correctly signed but never persisted
	stray, err := m.Issuer.IssueRefresh("ghost-user")
	if err != nil {
		t.Fatalf("IssueRefresh error: %v", err)
	}

	if _, err := m.Refresh(stray); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}

	// no rows mutated
	rows := activeTokens(t, m, user.ID)
	if len(rows) != 1 {
		t.Fatalf("active rows = %d, want 1", len(rows))
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	m, _ := testManager(t)

	if _, err := m.Refresh("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefresh_RevokedToken(t *testing.T) {
	m, _ := testManager(t)
	mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := m.Logout(pair.RefreshToken); err != nil {
		t.Fatalf("Logout error: %v", err)
	}

	if _, err := m.Refresh(pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRefresh_HardExpiry(t *testing.T) {
	m, now := testManager(t)
	mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	*now = now.Add(m.RefreshTTL + time.Hour)

	if _, err := m.Refresh(pair.RefreshToken); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}

	row, err := m.Store.FindByToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("FindByToken error: %v", err)
	}
	if !row.Revoked {
		t.Fatal("expired token must be revoked")
	}
}

func TestRefresh_IdleTimeout(t *testing.T) {
	m, now := testManager(t)
	mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// past the idle limit, well before the hard TTL
	*now = now.Add(m.IdleLimit + time.Minute)

	if _, err := m.Refresh(pair.RefreshToken); !errors.Is(err, ErrSessionIdle) {
		t.Fatalf("err = %v, want ErrSessionIdle", err)
	}

	row, err := m.Store.FindByToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("FindByToken error: %v", err)
	}
	if !row.Revoked {
		t.Fatal("idle token must be revoked")
	}
}

func TestRefresh_ActivityExtendsIdleWindow(t *testing.T) {
	m, now := testManager(t)
	mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// activity keeps arriving just inside the idle limit
	for i := 0; i < 3; i++ {
		*now = now.Add(m.IdleLimit - time.Minute)
		if err := m.Store.TouchActivity(pair.RefreshToken, *now); err != nil {
			t.Fatalf("TouchActivity error: %v", err)
		}
	}

	*now = now.Add(m.IdleLimit - time.Minute)
	if _, err := m.Refresh(pair.RefreshToken); err != nil {
		t.Fatalf("Refresh after activity error: %v", err)
	}
}

func TestRefresh_RotationRace(t *testing.T) {
	m, now := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	oldToken := pair.RefreshToken

	*now = now.Add(2 * time.Minute)

	// With a pinned clock the issuer is deterministic, so the token a
	// concurrent winner would have created is exactly what IssueRefresh
	// returns right now. Pre-inserting it reproduces the loser's view:
	// the rotation insert collides on the unique token column.
	winner, err := m.Issuer.IssueRefresh(user.ID)
	if err != nil {
		t.Fatalf("IssueRefresh error: %v", err)
	}
	if _, err := m.Store.Create(user.ID, winner, now.Add(m.RefreshTTL), *now); err != nil {
		t.Fatalf("insert winner row: %v", err)
	}

	got, err := m.Refresh(oldToken)
	if err != nil {
		t.Fatalf("racing Refresh must not fail, got: %v", err)
	}
	if got.RefreshToken != winner {
		t.Fatal("loser must receive the winner's refresh token")
	}
	if got.AccessToken == "" {
		t.Fatal("loser must still receive a working access token")
	}
	if claims, err := m.Issuer.VerifyAccess(got.AccessToken); err != nil || claims.UserID != user.ID {
		t.Fatalf("loser's access token invalid: claims=%v err=%v", claims, err)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	m, _ := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	pair, _, err := m.Login("alice", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if err := m.Logout(pair.RefreshToken); err != nil {
		t.Fatalf("first Logout error: %v", err)
	}
	if err := m.Logout(pair.RefreshToken); err != nil {
		t.Fatalf("second Logout error: %v", err)
	}
	if err := m.Logout(""); err != nil {
		t.Fatalf("empty Logout error: %v", err)
	}
	if err := m.Logout("never-issued"); err != nil {
		t.Fatalf("unknown Logout error: %v", err)
	}

	if rows := activeTokens(t, m, user.ID); len(rows) != 0 {
		t.Fatalf("active rows = %d, want 0", len(rows))
	}
}

func TestRegister_NormalizesAndRejectsDuplicates(t *testing.T) {
	m, _ := testManager(t)

	user := mustRegister(t, m, "alice cooper", "alice", "secret")
	if user.Name != "ALICE COOPER" {
		t.Fatalf("name = %q, want uppercased", user.Name)
	}

	// same normalized name, different username
	if _, err := m.Register(RegisterInput{Name: "Alice Cooper", Username: "alice2", Password: "x"}); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("err = %v, want ErrDuplicateUser", err)
	}
	// same username, different name
	if _, err := m.Register(RegisterInput{Name: "someone else", Username: "alice", Password: "x"}); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("err = %v, want ErrDuplicateUser", err)
	}
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	m, _ := testManager(t)
	user := mustRegister(t, m, "alice", "alice", "secret")

	if user.Password == "secret" || user.Password == "" {
		t.Fatal("password must be stored as a hash")
	}
	if _, _, err := m.Login("alice", "secret"); err != nil {
		t.Fatalf("Login with original password error: %v", err)
	}
}
