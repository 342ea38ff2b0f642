package host

// PreviewLayer is the render layer of the customization preview.
const PreviewLayer = 5

// Node is a named element of an instance's object tree.
type Node struct {
	Name     string  `json:"name"`
	Layer    int     `json:"layer"`
	Active   bool    `json:"active"`
	Children []*Node `json:"children,omitempty"`
	Parent   *Node   `json:"-"`
}

// NewNode creates an active node.
func NewNode(name string, children ...*Node) *Node {
	n := &Node{Name: name, Active: true}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// AddChild reparents child under n.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i:i], n.Children[i+1:]...)
			return
		}
	}
}

// FindChild searches the subtree below n depth first for a node called name.
func (n *Node) FindChild(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// SetLayerRecursive applies layer to n and its whole subtree.
func (n *Node) SetLayerRecursive(layer int) {
	n.Layer = layer
	for _, c := range n.Children {
		c.SetLayerRecursive(layer)
	}
}

// Material describes how an attachment is rendered.
type Material struct {
	Shader     string             `json:"shader"`
	Instancing bool               `json:"instancing"`
	Persistent bool               `json:"persistent"`
	Floats     map[string]float64 `json:"floats,omitempty"`
}

// CopyFloats copies every scalar property of src that m does not already define.
func (m *Material) CopyFloats(src *Material) {
	if src == nil || len(src.Floats) == 0 {
		return
	}
	if m.Floats == nil {
		m.Floats = make(map[string]float64, len(src.Floats))
	}
	for k, v := range src.Floats {
		m.Floats[k] = v
	}
}

// Attachment is a piece of equipment an instance can show.
type Attachment struct {
	Name      string      `json:"name"`
	Node      *Node       `json:"node"`
	Materials []*Material `json:"materials"`
}

// AttachmentName is the name accessor used by tail scans over attachments.
func AttachmentName(a *Attachment) string {
	if a == nil {
		return ""
	}
	return a.Name
}

// Instance is a character: the preview dummy or a live participant.
type Instance struct {
	ID          string        `json:"id"`
	Actor       int           `json:"actor"`
	Local       bool          `json:"local"`
	Root        *Node         `json:"root"`
	Attachments []*Attachment `json:"attachments"`
}
