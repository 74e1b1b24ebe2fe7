package utils

// CompareStringSlices compara dois slices de strings em tamanho e conteúdo,
// na ordem. Dois slices nil ou vazios são considerados iguais.
func CompareStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ContainsString informa se o slice contém o valor.
func ContainsString(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
