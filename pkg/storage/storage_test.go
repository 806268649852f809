package storage_test

import (
	"github.com/go-test/deep"
	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/mandelsoft/femodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/model/element"
	"github.com/mandelsoft/femodel/pkg/model/material"
	"github.com/mandelsoft/femodel/pkg/stage"
	"github.com/mandelsoft/femodel/pkg/storage"
)

func truss() *manager.ModelManager {
	m := manager.New()
	n1 := Must(m.CreateNode("n1", 0, 0))
	n2 := Must(m.CreateNode("n2", 2, 0))
	mat := Must(m.CreateMaterial(material.ELASTIC, material.WithElasticModulus(70000)))
	Must(m.CreateElement(element.TRUSS, element.WithNodes(n1.GetId(), n2.GetId()),
		element.WithMaterial(mat.GetId()), element.WithArea(0.001)))
	s := Must(m.CreateStage(stage.STATIC, "load"))
	s.AddElement(1)
	m.Stages().SetCurrentStage(s.GetId())
	return m
}

var _ = Describe("model storage", func() {
	var fs vfs.FileSystem

	BeforeEach(func() {
		fs = memoryfs.New()
	})

	It("determines the format by extension", func() {
		Expect(storage.FormatFor("a/model.json")).To(Equal(storage.JSON))
		Expect(storage.FormatFor("model.YML")).To(Equal(storage.YAML))
		Expect(storage.FormatFor("model.hcl")).To(Equal(storage.HCL))
		_, err := storage.FormatFor("model.txt")
		Expect(err).To(MatchError(storage.ErrUnsupportedFormat))
	})

	for _, f := range []string{"model.json", "model.yaml"} {
		file := "models/" + f
		It("round trips a model as "+f, func() {
			m := truss()
			MustBeSuccessful(storage.SaveModel(fs, file, m))
			Expect(vfs.FileExists(fs, file)).To(BeTrue())

			r := Must(storage.LoadModel(fs, file))
			Expect(r.UID()).To(Equal(m.UID()))
			Expect(Must(r.Digest())).To(Equal(Must(m.Digest())))
			Expect(deep.Equal(Must(r.ToDict()), Must(m.ToDict()))).To(BeNil())
		})
	}

	It("does not write hcl", func() {
		err := storage.SaveModel(fs, "model.hcl", truss())
		Expect(err).To(MatchError(storage.ErrUnsupportedFormat))
	})

	It("reads hcl definitions", func() {
		MustBeSuccessful(vfs.WriteFile(fs, "model.hcl", []byte(`
node {
  coordinates = [0, 0]
}
node {
  coordinates = [${SPAN}, 0]
}
`), 0o600))
		m := Must(storage.LoadModel(fs, "model.hcl", storage.WithSubstitution(), storage.WithEnv(map[string]string{"SPAN": "6"})))
		Expect(m.Count(model.NODE)).To(Equal(2))
		Expect(m.GetNode(2).X()).To(Equal(6.0))
	})

	It("substitutes variables only on request", func() {
		MustBeSuccessful(vfs.WriteFile(fs, "model.yaml", []byte(`
nodes:
- id: 1
  metadata:
    name: ${NAME}
  coordinates: [0, 0]
`), 0o600))
		env := storage.WithEnv(map[string]string{"NAME": "support"})
		m := Must(storage.LoadModel(fs, "model.yaml", storage.WithSubstitution(), env))
		Expect(m.GetNode(1).GetName()).To(Equal("support"))

		m = Must(storage.LoadModel(fs, "model.yaml", storage.WithSubstitution(false), env))
		Expect(m.GetNode(1).GetName()).To(Equal("${NAME}"))
	})

	It("returns partial models with skipped records", func() {
		MustBeSuccessful(vfs.WriteFile(fs, "model.json", []byte(`{
  "nodes": [ {"id": 1, "coordinates": [0, 0]}, "broken" ]
}`), 0o600))
		m, err := storage.LoadModel(fs, "model.json")
		Expect(err).To(HaveOccurred())
		Expect(m.Count(model.NODE)).To(Equal(1))
	})

	Context("store", func() {
		It("manages named models", func() {
			s := Must(storage.NewStore("store", storage.YAML, fs))
			Expect(s.List()).To(BeEmpty())

			m := truss()
			MustBeSuccessful(s.Put("truss", m))
			MustBeSuccessful(s.Put("other", manager.New()))
			Expect(s.List()).To(Equal([]string{"other", "truss"}))
			Expect(vfs.FileExists(fs, "store/truss.yaml")).To(BeTrue())

			r := Must(s.Get("truss"))
			Expect(Must(r.Digest())).To(Equal(Must(m.Digest())))

			MustBeSuccessful(s.Delete("other"))
			Expect(s.List()).To(Equal([]string{"truss"}))
		})

		It("rejects hcl stores", func() {
			_, err := storage.NewStore("store", storage.HCL, fs)
			Expect(err).To(MatchError(storage.ErrUnsupportedFormat))
		})
	})
})
