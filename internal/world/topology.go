package world

import "errors"

// ErrEraOutOfRange is returned for eras with no topology script.
var ErrEraOutOfRange = errors.New("era must be between 1 and 9")

// MaxScriptedEra is the last era with a topology script.
const MaxScriptedEra = 9

// Edge is an undirected pair of tile indices.
type Edge [2]int

// EraScript is the continental drift applied when an era begins: edges
// removed, then edges added, then tiles frozen.
type EraScript struct {
	Disconnect []Edge
	Connect    []Edge
	Freeze     []int
}

// EraScripts maps each era to its drift. Era 1 only lays down the first ring.
var EraScripts = map[int]EraScript{
	1: {},
	2: {
		Disconnect: []Edge{{11, 16}, {14, 15}, {13, 14}},
		Connect: []Edge{
			{11, 22}, {11, 21}, {12, 22}, {13, 22}, {13, 23},
			{14, 24}, {15, 25}, {15, 26}, {16, 26},
		},
	},
	3: {
		Disconnect: []Edge{
			{21, 22}, {22, 23}, {23, 24}, {25, 26}, {15, 25}, {13, 23}, {11, 21},
		},
		Connect: []Edge{
			{22, 32}, {23, 33}, {24, 34}, {24, 35}, {25, 35},
			{15, 36}, {26, 36}, {26, 31}, {21, 31},
		},
	},
	4: {
		Disconnect: []Edge{{31, 32}, {32, 33}, {35, 36}},
		Connect: []Edge{
			{31, 41}, {32, 42}, {33, 43}, {33, 44}, {34, 44},
			{35, 44}, {35, 45}, {36, 41}, {36, 46},
		},
	},
	5: {
		Disconnect: []Edge{{41, 46}, {46, 45}, {45, 44}, {43, 44}},
		Connect: []Edge{
			{51, 36}, {51, 41}, {52, 41}, {52, 42}, {52, 43},
			{53, 43}, {54, 44}, {55, 45}, {56, 46},
		},
	},
	6: {
		Disconnect: []Edge{
			{51, 52}, {52, 53}, {53, 54}, {54, 55}, {55, 56}, {51, 41}, {36, 51},
		},
		Connect: []Edge{
			{15, 51}, {36, 51}, {51, 61}, {61, 56}, {56, 66},
			{65, 55}, {64, 54}, {63, 53}, {62, 52},
		},
		Freeze: []int{11, 12, 13, 14},
	},
	7: {
		Disconnect: []Edge{
			{61, 62}, {62, 63}, {63, 64}, {65, 66}, {51, 15}, {51, 36},
		},
		Connect: []Edge{
			{51, 15}, {71, 61}, {71, 66}, {76, 66}, {75, 65},
			{75, 64}, {74, 64}, {73, 63}, {72, 62},
		},
		Freeze: []int{24, 25, 23, 21, 22},
	},
	8: {
		Disconnect: []Edge{{71, 72}, {72, 73}, {75, 76}, {51, 15}},
		Connect: []Edge{
			{81, 71}, {82, 72}, {83, 73}, {84, 74}, {85, 75},
			{86, 76}, {81, 76}, {84, 73}, {84, 75},
		},
		Freeze: []int{33, 34, 35, 32, 31, 26, 16},
	},
	9: {
		Disconnect: []Edge{{83, 84}, {85, 86}, {81, 86}, {83, 73}},
		Connect: []Edge{
			{81, 91}, {82, 92}, {83, 93}, {84, 94}, {85, 95},
			{86, 96}, {91, 76}, {92, 81}, {94, 73}, {95, 84},
		},
		Freeze: []int{44, 45, 41, 42, 43, 36, 15},
	},
}
