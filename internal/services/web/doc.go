// Package web serves the localized card site.
//
// Every path comes from the route table built at startup; one resolver renders
// each route by page kind inside the shared layout, with links to the same
// page in the other languages that serve it.
package web
