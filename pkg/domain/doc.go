/*
Package domain contains the core model of Arkhe: typed nodes, the handovers that map
one node's state into a new value, and the hypergraph that collects nodes by id.

The package is deliberately small and free of I/O. Nothing here schedules, persists or
validates; operations are synchronous and total for well-typed inputs. A mapper that
panics propagates its panic to whoever executed the handover.

# Key Entities

  - PreservationProtocol: Descriptive tag for how much information a handover retains.
  - StateSpace: Descriptive record of a space (dimension, topology, algebra).
  - Node: An identified container for a typed current state and a coherence score.
  - Handover: A named, typed mapping from S to T with a protocol and fidelity score.
  - Hypergraph: A named collection of uniquely identified nodes and the handover links between them.
  - InterTheoryHandover: A converter between nodes of two different models; it may update the target.

Handovers form a category: Compose chains two of them, ids compose by concatenation
and the result is always tagged Transmutative.
*/
package domain
