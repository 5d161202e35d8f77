package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if Login != "/login" {
		t.Fatalf("Login = %q", Login)
	}
	if Logout != "/logout" {
		t.Fatalf("Logout = %q", Logout)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if Members != "/members" {
		t.Fatalf("Members = %q", Members)
	}
	if MembersTable != "/members/table" {
		t.Fatalf("MembersTable = %q", MembersTable)
	}
	if Invites != "/invites" {
		t.Fatalf("Invites = %q", Invites)
	}
	if InvitesTable != "/invites/table" {
		t.Fatalf("InvitesTable = %q", InvitesTable)
	}
}

func TestMemberDetailBuilder(t *testing.T) {
	t.Parallel()

	if got := MemberDetail("m-1"); got != "/members/detail?referred_id=m-1" {
		t.Fatalf("MemberDetail = %q", got)
	}
	if got := MemberDetail(" m 1 "); got != "/members/detail?referred_id=m+1" {
		t.Fatalf("MemberDetail escaped = %q", got)
	}
}
