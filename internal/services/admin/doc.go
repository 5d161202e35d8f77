// Package admin implements the operator dashboard for the SuperClip referral
// program.
//
// It translates browser actions into SuperClip API calls so operators can
// review Discord membership records, invites, and referral statistics without
// talking to the backend directly.
package admin
