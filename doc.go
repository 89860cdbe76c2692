/*
Package ariadne drives an autonomous agent through a maze that is revealed
incrementally: the agent's surroundings are unknown until it stands next to
them, and every discovery or move is a round trip to a remote authority that
is the sole source of truth for position, death and victory.

The engine performs a physical backtracking depth-first search to enumerate
every safe route from the entry cell to an exit, selects the shortest one,
and replays it step by step:

	gw := remote.New("http://localhost:8078")
	eng := ariadne.New(gw)

	if err := eng.Start(ctx, "theseus"); err != nil {
		log.Fatal(err)
	}
	paths, _ := eng.Explore(ctx)
	status, _ := eng.FollowShortestPath(ctx)

A reference maze authority lives under cmd/ariadne ("ariadne serve") for
local play and end-to-end testing.
*/
package ariadne
