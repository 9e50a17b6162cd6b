package main

import "errors"

var (
	errUsage       = errors.New("invalid usage")
	errNotSignedIn = errors.New("not signed in, run: storefront login -email ... -password ...")
	errNoAddress   = errors.New("no saved address, run: storefront address add ...")
)
