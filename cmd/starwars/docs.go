package main

// @title Star Wars Favorites API
// @version 1.0
// @description Read-only Star Wars catalog of people and planets with per-user favorites.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @BasePath /

// @tag.name Users
// @tag.description Users and their favorites

// @tag.name People
// @tag.description Star Wars characters

// @tag.name Planets
// @tag.description Star Wars planets

// @tag.name Favorites
// @tag.description Add and remove favorites

// @tag.name Health
// @tag.description Health check endpoints
