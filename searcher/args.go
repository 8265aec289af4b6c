package searcher

// Search parameters

const MaxDepth = 7 // Default ply budget

// WinScore is the magnitude of a forced win or loss. The remaining depth
// is added on top so shallow wins outscore deep ones, and deep losses
// outscore shallow ones.
const WinScore = 1_000_000

const DrawScore = 0
