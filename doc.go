// Package pennant decides, for every team in a sports division, whether it
// can still finish the season in first place (alone or tied), and when it
// cannot, names the rivals that prove it.
//
// The module is split into small packages:
//
//	roster       Team records, validation, text and YAML loaders
//	flow         max-flow over a dense network with Capacity{Finite, Unbounded};
//	             Ford–Fulkerson, Edmonds–Karp and Dinic; min-cut membership
//	elimination  the Division oracle: trivial check, flow reduction,
//	             certificates, Evidence, a write-once result cache
//	config       YAML configuration with PENNANT_* environment overrides
//	server       chi HTTP driver with Prometheus /metrics
//	cmd/pennant  CLI: `pennant report` and `pennant serve`
//
// Quick start:
//
//	r, err := roster.Load("division.txt")
//	if err != nil { ... }
//	d, _ := elimination.New(r)
//	for _, name := range r.TeamNames() {
//		if cert, _ := d.Certificate(name); cert != nil {
//			fmt.Println(name, "is eliminated by", cert)
//		}
//	}
package pennant
