// Command tonearm administers a music catalog: registering media folders,
// granting folder visibility to users, seeding catalog entries, and
// reassigning whole subtrees between nested folders.
package main
