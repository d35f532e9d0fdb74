// Package probe implements the bounded linear probe over a slot table.
//
// A key with hash h has exactly Budget candidate slots,
//
//	i_k = (h + k) mod N,  k = 0 .. Budget-1
//
// and both modes walk them in order:
//
//	status      Lookup                Locate
//	─────────   ───────────────────   ─────────────────────
//	tombstone   skip                  skip (never claimed)
//	occupied    key equal → Found     key equal → Existing
//	            else skip             else skip
//	vacant      stop → NotFound       stop → New
//	exhausted   NotFound              Overflow
//
// Because insertion always claims the first vacancy of the window, a key is
// never stored past a vacancy, which is what lets Lookup stop early.
package probe
