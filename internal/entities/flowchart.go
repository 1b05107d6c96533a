package entities

import "encoding/json"

// Quick-start flow charts are persisted as JSON in
// Equipment.QuickStartFlowChartJSON.

type FlowNodeType string

const (
	FlowNodeStart    FlowNodeType = "start"
	FlowNodeStep     FlowNodeType = "step"
	FlowNodeDecision FlowNodeType = "decision"
	FlowNodeEnd      FlowNodeType = "end"
)

type FlowPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type FlowNodeData struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type FlowNode struct {
	ID       string       `json:"id"`
	Type     FlowNodeType `json:"type"`
	Position FlowPosition `json:"position"`
	Data     FlowNodeData `json:"data"`
}

type FlowEdge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Label    string `json:"label,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

type FlowChartData struct {
	Version int        `json:"version"`
	Nodes   []FlowNode `json:"nodes"`
	Edges   []FlowEdge `json:"edges"`
}

// ParseFlowChartJSON decodes a stored flow chart. Empty payloads ("" or "{}")
// and anything without both a nodes and an edges array decode to nil. Nodes
// missing any required key and edges missing id/source/target are dropped.
func ParseFlowChartJSON(raw string) *FlowChartData {
	if raw == "" || raw == "{}" {
		return nil
	}

	var obj struct {
		Nodes []json.RawMessage `json:"nodes"`
		Edges []json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil
	}
	if obj.Nodes == nil || obj.Edges == nil {
		return nil
	}

	data := &FlowChartData{Version: 1, Nodes: []FlowNode{}, Edges: []FlowEdge{}}

	for _, rawNode := range obj.Nodes {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(rawNode, &keys); err != nil {
			continue
		}
		if !hasKeys(keys, "id", "type", "position", "data") {
			continue
		}
		var node FlowNode
		if err := json.Unmarshal(rawNode, &node); err != nil {
			continue
		}
		data.Nodes = append(data.Nodes, node)
	}

	for _, rawEdge := range obj.Edges {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(rawEdge, &keys); err != nil {
			continue
		}
		if !hasKeys(keys, "id", "source", "target") {
			continue
		}
		var edge FlowEdge
		if err := json.Unmarshal(rawEdge, &edge); err != nil {
			continue
		}
		data.Edges = append(data.Edges, edge)
	}

	return data
}

func hasKeys(obj map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}

// SerializeFlowChart encodes a flow chart for storage.
func SerializeFlowChart(data *FlowChartData) string {
	if data == nil {
		return "{}"
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

// NewEmptyFlowChart returns a chart with a single start node.
func NewEmptyFlowChart() *FlowChartData {
	return &FlowChartData{
		Version: 1,
		Nodes: []FlowNode{
			{
				ID:       "start-1",
				Type:     FlowNodeStart,
				Position: FlowPosition{X: 250, Y: 50},
				Data:     FlowNodeData{Label: "Start"},
			},
		},
		Edges: []FlowEdge{},
	}
}
